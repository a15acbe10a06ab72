package thumbnail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"https double slash", "https://images.foobar.com/12345", "images.foobar.com/12345"},
		{"http double slash", "http://images.foobar.com/12345", "images.foobar.com/12345"},
		{"https single slash", "https:/images.foobar.com/12345", "images.foobar.com/12345"},
		{"http single slash", "http:/images.foobar.com/12345", "images.foobar.com/12345"},
		{"no scheme", "1/ab/zulip.jpeg", "1/ab/zulip.jpeg"},
		{"leading slash", "/1/ab/zulip.jpeg", "1/ab/zulip.jpeg"},
		{"query dropped", "https://host.com/a.png?x=1#frag", "host.com/a.png"},
		{"spaces encoded", "1/ab/my photo.png", "1/ab/my%20photo.png"},
		{"unicode encoded", "1/ab/μένει.jpg", "1/ab/%CE%BC%CE%AD%CE%BD%CE%B5%CE%B9.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thumbnail.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_SingleSlashMatchesDoubleSlash(t *testing.T) {
	hosts := []string{"images.foobar.com/12345", "a.b/c/d.png", "x.org/some%20thing"}
	for _, scheme := range []string{"http", "https"} {
		for _, rest := range hosts {
			wellFormed, err := thumbnail.Normalize(scheme + "://" + rest)
			require.NoError(t, err)
			malformed, err := thumbnail.Normalize(scheme + ":/" + rest)
			require.NoError(t, err)
			assert.Equal(t, wellFormed, malformed)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, input := range []string{"", "http://", "https:/", "/"} {
		_, err := thumbnail.Normalize(input)
		assert.ErrorIs(t, err, domain.ErrInvalidReference, input)
	}
}

func TestNormalize_SubDelimitersStayLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1/ab/a:b+c.png", "1/ab/a:b+c.png"},
		{"https://host.com/a:b+c.png", "host.com/a:b+c.png"},
		{"1/ab/x@y&z=$.png", "1/ab/x@y&z=$.png"},
		{"1/ab/a;b,c.png", "1/ab/a%3Bb%2Cc.png"},
	}

	for _, tt := range tests {
		got, err := thumbnail.Normalize(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
