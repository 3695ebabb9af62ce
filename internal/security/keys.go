package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const cookieKeyLen = 32

// CookieKeys are the HMAC and AES keys of the browser session cookie, plus
// the key form tokens are signed with.
type CookieKeys struct {
	Hash  []byte
	Block []byte
	CSRF  []byte
}

// DeriveCookieKeys expands the single configured session secret into
// independent signing and encryption keys.
func DeriveCookieKeys(secret string) (CookieKeys, error) {
	if secret == "" {
		return CookieKeys{}, errors.New("session secret is empty")
	}

	hash, err := derive(secret, "estate-admin/cookie/hash")
	if err != nil {
		return CookieKeys{}, err
	}
	block, err := derive(secret, "estate-admin/cookie/block")
	if err != nil {
		return CookieKeys{}, err
	}
	csrf, err := derive(secret, "estate-admin/form/csrf")
	if err != nil {
		return CookieKeys{}, err
	}
	return CookieKeys{Hash: hash, Block: block, CSRF: csrf}, nil
}

func derive(secret, info string) ([]byte, error) {
	key := make([]byte, cookieKeyLen)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive %s: %w", info, err)
	}
	return key, nil
}
