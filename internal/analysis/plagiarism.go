package analysis

import (
	"fmt"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
)

type plagiarismMode struct{}

func (plagiarismMode) Kind() Kind {
	return KindPlagiarism
}

var plagiarismSchema = &ai.Schema{
	Type: ai.TypeArray,
	Items: &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"plagiarized_text": {Type: ai.TypeString, Description: "The exact passage copied verbatim from the input text."},
			"source_url":       {Type: ai.TypeString, Description: "The most likely original source of the passage."},
			"confidence_score": {Type: ai.TypeNumber, Description: "Confidence between 0 and 1 that the passage is plagiarized."},
		},
		Required: []string{"plagiarized_text", "source_url", "confidence_score"},
	},
}

var plagiarismTiers = map[string]string{
	SensitivityMedium: "Flag passages that closely match known published sources.",
	SensitivityHigh:   "Flag passages that closely match known published sources, including lightly reworded copies.",
	SensitivityStrict: "Flag every passage that resembles published material, including paraphrased and restructured copies. Be aggressive.",
}

func (plagiarismMode) BuildRequest(chunk string, opts Options) *ai.Request {
	tier := plagiarismTiers[opts.Sensitivity]
	if tier == "" {
		tier = plagiarismTiers[SensitivityMedium]
	}
	prompt := fmt.Sprintf(`You are a plagiarism detection engine.
Analyze the text below and identify passages that appear to be copied from existing published sources.
- %s
- Quote each flagged passage EXACTLY as it appears in the text, character for character.
- For each passage give the most likely source URL and a confidence score between 0 and 1.
- Return a JSON array of findings. Return an empty array if nothing is flagged.

TEXT:
%s`, tier, chunk)
	return &ai.Request{Prompt: prompt, Schema: plagiarismSchema}
}

func (plagiarismMode) ParseFindings(raw string) ([]Finding, error) {
	var items []PlagiarismFinding
	if err := parseJSONArray(raw, &items); err != nil {
		return nil, err
	}
	findings := make([]Finding, 0, len(items))
	for _, item := range items {
		findings = append(findings, Finding{
			Text:       item.PlagiarizedText,
			SourceURL:  item.SourceURL,
			Confidence: item.ConfidenceScore,
		})
	}
	return findings, nil
}
