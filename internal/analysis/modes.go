package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
)

// Kind enumerates the analysis modes.
type Kind string

const (
	KindPlagiarism  Kind = "plagiarism"
	KindAIDetection Kind = "ai_detection"
	KindHumanize    Kind = "humanize"
	KindSummarize   Kind = "summarize"
)

const (
	SensitivityMedium = "medium"
	SensitivityHigh   = "high"
	SensitivityStrict = "strict"

	ToneDefault  = "default"
	ToneCasual   = "casual"
	ToneAcademic = "academic"
	ToneCreative = "creative"
	ToneConcise  = "concise"

	SummaryShort    = "short"
	SummaryMedium   = "medium"
	SummaryDetailed = "detailed"
)

// Options selects the prompt variant for a run. Unset fields fall back
// to the documented defaults (medium sensitivity, default tone, medium
// summary length). Pure input, no lifecycle.
type Options struct {
	Sensitivity   string `json:"sensitivity,omitempty"`
	Tone          string `json:"tone,omitempty"`
	SummaryLength string `json:"summary_length,omitempty"`
}

// detectMode is one detection strategy: it renders the chunk prompt with
// its structured-output schema and parses the model's finding array back
// into the shared Finding shape.
type detectMode interface {
	Kind() Kind
	BuildRequest(chunk string, opts Options) *ai.Request
	ParseFindings(raw string) ([]Finding, error)
}

// rewriteMode is one rewrite strategy producing plain replacement text
// for each chunk.
type rewriteMode interface {
	Kind() Kind
	BuildRequest(chunk string, opts Options) *ai.Request
}

// parseJSONArray tolerates the code fences and prose some models wrap
// around their JSON before unmarshalling the array between the outermost
// brackets.
func parseJSONArray(raw string, dst interface{}) error {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	if err := json.Unmarshal([]byte(clean), dst); err != nil {
		return fmt.Errorf("parse findings: %w", err)
	}
	return nil
}
