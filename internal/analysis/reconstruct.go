package analysis

import (
	"math"
	"strings"
)

// Reconstruct maps substring findings back onto the original text,
// producing an ordered partition into flagged and unflagged segments
// plus the aggregate percent score.
//
// Matching is literal, case-sensitive and first-match-wins: once a span
// is flagged it is never matched or split again by later findings. A
// finding whose text does not occur verbatim in the input (typically
// because the model paraphrased instead of quoting) is silently dropped.
// Matched characters are counted per finding against the full original
// text without deduplication, so overlapping findings on repetitive text
// can push the raw ratio past 100 before the final clamp. Both behaviors
// are known limitations of substring-based matching and are kept
// deliberately.
func Reconstruct(original string, findings []Finding) Result {
	segments := []Segment{{Text: original}}
	matchedChars := 0
	for _, finding := range findings {
		if finding.Text == "" {
			continue
		}
		matchedChars += strings.Count(original, finding.Text) * len(finding.Text)
		next := make([]Segment, 0, len(segments))
		for _, seg := range segments {
			if seg.Flagged || !strings.Contains(seg.Text, finding.Text) {
				next = append(next, seg)
				continue
			}
			parts := strings.Split(seg.Text, finding.Text)
			for i, part := range parts {
				if i > 0 {
					next = append(next, Segment{
						Text:       finding.Text,
						Flagged:    true,
						SourceURL:  finding.SourceURL,
						Confidence: finding.Confidence,
					})
				}
				if part != "" {
					next = append(next, Segment{Text: part})
				}
			}
		}
		segments = next
	}
	return Result{
		Score:    scorePercent(matchedChars, len(original)),
		Segments: segments,
	}
}

func scorePercent(matchedChars, totalChars int) int {
	if totalChars == 0 {
		return 0
	}
	ratio := 100 * float64(matchedChars) / float64(totalChars)
	if ratio > 100 {
		ratio = 100
	}
	return int(math.Round(ratio))
}
