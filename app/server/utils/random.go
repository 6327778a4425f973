package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHex 产生 n 字节的随机数并编码为十六进制字符串（长度为 2n）
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
