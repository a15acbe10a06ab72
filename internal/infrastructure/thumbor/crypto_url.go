// Package thumbor builds and verifies Thumbor-compatible signed image URLs.
//
// A signed URL has the form /<signature>/<options>/<image_url> where the
// signature is the URL-safe base64 HMAC-SHA1 of everything after it.
package thumbor

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

const sourceTypeSegment = "/source_type/"

var (
	optionsPattern = regexp.MustCompile(`^(?:(\d+)x(\d+)/)?(?:(smart)/)?(?:filters:((?:[a-z_]+\([^)/]*\):?)+)/)?(.+)$`)
	filterPattern  = regexp.MustCompile(`[a-z_]+\([^)/]*\)`)
)

type CryptoURL struct {
	key []byte
}

func NewCryptoURL(key string) *CryptoURL {
	return &CryptoURL{key: []byte(key)}
}

// PlainURL renders the unsigned part of a request. The dimension segment is
// left out when both sides are zero.
func PlainURL(req valueobject.SigningRequest) string {
	parts := make([]string, 0, 4)
	if req.Width != 0 || req.Height != 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", req.Width, req.Height))
	}
	if req.Smart {
		parts = append(parts, "smart")
	}
	if len(req.Filters) > 0 {
		parts = append(parts, "filters:"+strings.Join(req.Filters, ":"))
	}
	parts = append(parts, req.ImageURL)
	return strings.Join(parts, "/")
}

func (c *CryptoURL) Signature(plain string) string {
	mac := hmac.New(sha1.New, c.key)
	mac.Write([]byte(plain))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// Generate returns "/<signature>/<plain url>".
func (c *CryptoURL) Generate(req valueobject.SigningRequest) string {
	plain := PlainURL(req)
	return "/" + c.Signature(plain) + "/" + plain
}

// Verify checks the signature of a signed path (with or without the leading
// slash) and returns the plain part.
func (c *CryptoURL) Verify(signedPath string) (string, error) {
	sig, plain, ok := strings.Cut(strings.TrimPrefix(signedPath, "/"), "/")
	if !ok || sig == "" || plain == "" {
		return "", domain.ErrInvalidSignature
	}
	if !hmac.Equal([]byte(sig), []byte(c.Signature(plain))) {
		return "", domain.ErrInvalidSignature
	}
	return plain, nil
}

// ParsePlainURL is the inverse of PlainURL.
func ParsePlainURL(plain string) (valueobject.SigningRequest, error) {
	m := optionsPattern.FindStringSubmatch(plain)
	if m == nil {
		return valueobject.SigningRequest{}, fmt.Errorf("%w: unparseable options", domain.ErrInvalidReference)
	}

	var req valueobject.SigningRequest
	if m[1] != "" {
		w, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return valueobject.SigningRequest{}, fmt.Errorf("%w: width: %v", domain.ErrInvalidReference, err)
		}
		h, err := strconv.ParseUint(m[2], 10, 32)
		if err != nil {
			return valueobject.SigningRequest{}, fmt.Errorf("%w: height: %v", domain.ErrInvalidReference, err)
		}
		req.Width, req.Height = uint(w), uint(h)
	}
	req.Smart = m[3] != ""
	if m[4] != "" {
		req.Filters = filterPattern.FindAllString(m[4], -1)
	}
	req.ImageURL = m[5]
	return req, nil
}

// ComposeImageURL appends the source type marker the proxy dispatches on.
func ComposeImageURL(normalizedPath string, sourceType valueobject.SourceType) string {
	return normalizedPath + sourceTypeSegment + sourceType.Tag()
}

// SplitImageURL separates "<actual>/source_type/<tag>". The last marker wins
// so that paths which themselves contain the marker still resolve.
func SplitImageURL(imageURL string) (string, valueobject.SourceType) {
	idx := strings.LastIndex(imageURL, sourceTypeSegment)
	if idx <= 0 {
		return imageURL, valueobject.SourceTypeInvalid
	}
	return imageURL[:idx], valueobject.ParseSourceType(imageURL[idx+len(sourceTypeSegment):])
}
