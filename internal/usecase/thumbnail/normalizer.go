package thumbnail

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
)

// Normalize drops the scheme of a reference, keeps host and path, and
// percent-encodes the result. Single-slash schemes such as "http:/host/p"
// produce the same output as "http://host/p".
func Normalize(rawURL string) (string, error) {
	s := stripScheme(rawURL)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return "", fmt.Errorf("%w: %q has no host or path", domain.ErrInvalidReference, rawURL)
	}
	return escapePath(s), nil
}

func stripScheme(s string) string {
	i := strings.Index(s, ":")
	if i <= 0 || !isScheme(s[:i]) {
		return s
	}
	return s[i+1:]
}

func isScheme(s string) bool {
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
