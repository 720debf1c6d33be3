package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = 32
	saltLen          = 16
)

// HashPassword PBKDF2-SHA256 派生，随机 16 字节盐，
// 存储格式为 base64(salt):base64(hash)
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key), nil
}

// VerifyPassword 用存储的盐重新派生并比对。格式不合法时返回 false 而不是报错
func VerifyPassword(password, digest string) bool {
	saltB64, hashB64, found := strings.Cut(digest, ":")
	if !found || saltB64 == "" || hashB64 == "" {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	hash, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(key, hash) == 1
}
