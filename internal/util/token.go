package util

import (
	"crypto/rand"
	"encoding/hex"
)

// FormTokenLength 公开链接 token 的十六进制长度
const FormTokenLength = 48

// GenerateFormToken 生成加密安全的随机 token，48 个十六进制字符。
// 唯一性由 form_links.token 的唯一索引兜底。
func GenerateFormToken() (string, error) {
	buf := make([]byte, FormTokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
