package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorpus_SizeAndShape(t *testing.T) {
	req := require.New(t)

	req.Greater(len(commonWords), 900)
	req.LessOrEqual(len(commonWords), 1005)

	seen := make(map[string]bool, len(commonWords))
	for _, w := range commonWords {
		req.NotEmpty(strings.TrimSpace(w))
		req.Equal(strings.ToLower(w), w)
		req.False(seen[w], "duplicate word %q", w)
		seen[w] = true
	}

	req.Contains(commonWords, "the")
	req.Contains(commonWords, "and")
	req.Contains(commonWords, "is")
}

func TestDrawWords_SamplesFromCorpus(t *testing.T) {
	req := require.New(t)

	corpus := make(map[string]bool, len(commonWords))
	for _, w := range commonWords {
		corpus[w] = true
	}

	words := drawWords(30)
	req.Len(words, 30)
	for _, w := range words {
		req.True(corpus[w])
	}
}
