package room

import "math/rand"

// drawWords samples n words uniformly with replacement from the corpus.
func drawWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = commonWords[rand.Intn(len(commonWords))]
	}
	return words
}
