package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	mod := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	base := Fingerprint("/reports/a/Q1.pdf", 1024, mod)

	assert.Len(t, base, 64)
	assert.Equal(t, base, Fingerprint("/reports/a/Q1.pdf", 1024, mod))

	assert.NotEqual(t, base, Fingerprint("/reports/a/Q2.pdf", 1024, mod))
	assert.NotEqual(t, base, Fingerprint("/reports/a/Q1.pdf", 1025, mod))
	assert.NotEqual(t, base, Fingerprint("/reports/a/Q1.pdf", 1024, mod.Add(time.Second)))
}

func TestNoopTextCache(t *testing.T) {
	var c TextCache = NoopTextCache{}

	require.NoError(t, c.SetPages(context.Background(), "key", []string{"page"}))
	pages, hit, err := c.GetPages(context.Background(), "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, pages)
}
