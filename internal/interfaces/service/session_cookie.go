// Package service
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignSessionToken 不透明トークンにHMAC-SHA256署名を付けてCookie値を生成する。
// 形式は "<token>.<hex署名>"。
func SignSessionToken(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifySessionCookie Cookie値の署名を検証してトークンを取り出す。
// 改ざんや形式不正の場合はokがfalseになる。
func VerifySessionCookie(secret, cookieValue string) (token string, ok bool) {
	index := strings.LastIndex(cookieValue, ".")
	if index <= 0 || index == len(cookieValue)-1 {
		return "", false
	}
	token = cookieValue[:index]
	signature, err := hex.DecodeString(cookieValue[index+1:])
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	if !hmac.Equal(signature, mac.Sum(nil)) {
		return "", false
	}
	return token, true
}
