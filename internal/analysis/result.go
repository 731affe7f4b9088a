package analysis

// Finding is one flagged span returned by the model for a chunk. The
// model references text by verbatim substring, not by offset, so Text
// must occur literally in the chunk it came from for reconstruction to
// pick it up.
type Finding struct {
	Text       string
	SourceURL  string
	Confidence float64
}

// Segment is a maximal contiguous piece of the original text, tagged
// flagged or unflagged. Flagged segments carry the metadata of the
// finding that matched them. Concatenating all segment texts in order
// reproduces the original input exactly.
type Segment struct {
	Text       string  `json:"text"`
	Flagged    bool    `json:"flagged"`
	SourceURL  string  `json:"source_url,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Result is the outcome of a detection run: the aggregate percent score
// clamped to [0,100] plus the ordered segment partition of the input.
// It is immutable once returned.
type Result struct {
	Score    int       `json:"score"`
	Segments []Segment `json:"segments"`
}

// PlagiarismFinding mirrors the JSON objects the model is instructed to
// return for a plagiarism check.
type PlagiarismFinding struct {
	PlagiarizedText string  `json:"plagiarized_text"`
	SourceURL       string  `json:"source_url"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// AIDetectionFinding mirrors the JSON objects the model returns for an
// AI-content check. Findings with IsAIGenerated=false are discarded
// before reconstruction.
type AIDetectionFinding struct {
	Text            string  `json:"text"`
	IsAIGenerated   bool    `json:"is_ai_generated"`
	ConfidenceScore float64 `json:"confidence_score"`
}
