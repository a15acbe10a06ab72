// Package camo rewrites plain http image URLs to go through a camo
// content-security proxy.
package camo

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

type Rewriter struct {
	baseURI string
	key     []byte
}

func NewRewriter(baseURI, key string) *Rewriter {
	if !strings.HasSuffix(baseURI, "/") {
		baseURI += "/"
	}
	return &Rewriter{baseURI: baseURI, key: []byte(key)}
}

// Rewrite returns <base><hex hmac-sha1 digest>/<hex encoded url>.
func (r *Rewriter) Rewrite(rawURL string) string {
	mac := hmac.New(sha1.New, r.key)
	mac.Write([]byte(rawURL))
	return r.baseURI + hex.EncodeToString(mac.Sum(nil)) + "/" + hex.EncodeToString([]byte(rawURL))
}
