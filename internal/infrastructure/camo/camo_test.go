package camo_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/camo"
)

func TestRewriter_Rewrite(t *testing.T) {
	const src = "http://www.google.com/images/srpr/logo4w.png"

	t.Run("hex encodes the source url", func(t *testing.T) {
		r := camo.NewRewriter("https://external-content.zulipcdn.net/", "camo-key")
		got := r.Rewrite(src)

		require.True(t, strings.HasPrefix(got, "https://external-content.zulipcdn.net/"))
		assert.True(t, strings.HasSuffix(got, "/687474703a2f2f7777772e676f6f676c652e636f6d2f696d616765732f737270722f6c6f676f34772e706e67"))
	})

	t.Run("digest is forty hex characters", func(t *testing.T) {
		r := camo.NewRewriter("https://camo.example.com", "camo-key")
		rest := strings.TrimPrefix(r.Rewrite(src), "https://camo.example.com/")

		digest, encoded, ok := strings.Cut(rest, "/")
		require.True(t, ok)
		assert.Len(t, digest, 40)
		decoded, err := hex.DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, src, string(decoded))
	})

	t.Run("is keyed", func(t *testing.T) {
		a := camo.NewRewriter("https://camo.example.com/", "one")
		b := camo.NewRewriter("https://camo.example.com/", "two")
		assert.NotEqual(t, a.Rewrite(src), b.Rewrite(src))
	})
}
