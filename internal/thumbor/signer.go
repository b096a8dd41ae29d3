package thumbor

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// Signer computes thumbor URL signatures with a shared security key.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer for key, or nil when key is empty so that a
// Builder falls back to unsigned URLs.
func NewSigner(key string) *Signer {
	if key == "" {
		return nil
	}
	return &Signer{key: []byte(key)}
}

// Sign returns the URL-safe base64 HMAC-SHA1 of path. path must not carry a
// leading slash; see Path.
func (s *Signer) Sign(path string) string {
	mac := hmac.New(sha1.New, s.key)
	mac.Write([]byte(path))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
