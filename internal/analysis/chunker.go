package analysis

import "strings"

const DefaultMaxWordsPerChunk = 1000

// CountWords returns the number of whitespace-delimited non-empty tokens
// in text. Empty and all-whitespace input count zero.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// SplitChunks splits text into word-bounded chunks of at most maxWords
// words each. Text at or under the limit comes back as a single chunk,
// byte-for-byte unmodified, so the common short-document case never has
// its whitespace normalized. Longer text is tokenized and each chunk's
// words are re-joined with single spaces. Concatenating the word
// sequences of all chunks in order always reproduces the original word
// sequence.
func SplitChunks(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWordsPerChunk
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return []string{text}
	}
	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for start := 0; start < len(words); start += maxWords {
		end := start + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
