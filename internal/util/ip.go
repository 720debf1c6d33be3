package util

import (
	"net/http"
	"strings"
)

// ClientIP 从代理头取请求方 IP：X-Forwarded-For 链的第一跳，
// 退而取 X-Real-IP，都没有则记 "unknown"。
// 不读请求体里任何自报的 IP 字段
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
