package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// FormToken binds a form post to the console session that rendered it.
func FormToken(key []byte, sessionID string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte("form:" + sessionID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func ValidFormToken(key []byte, sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	return hmac.Equal([]byte(FormToken(key, sessionID)), []byte(token))
}
