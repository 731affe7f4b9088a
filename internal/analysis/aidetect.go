package analysis

import (
	"fmt"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
)

type aiDetectionMode struct{}

func (aiDetectionMode) Kind() Kind {
	return KindAIDetection
}

var aiDetectionSchema = &ai.Schema{
	Type: ai.TypeArray,
	Items: &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"text":             {Type: ai.TypeString, Description: "The exact passage copied verbatim from the input text."},
			"is_ai_generated":  {Type: ai.TypeBoolean, Description: "Whether the passage reads as machine generated."},
			"confidence_score": {Type: ai.TypeNumber, Description: "Confidence between 0 and 1."},
		},
		Required: []string{"text", "is_ai_generated", "confidence_score"},
	},
}

func (aiDetectionMode) BuildRequest(chunk string, opts Options) *ai.Request {
	prompt := fmt.Sprintf(`You are an AI-generated content detector.
Analyze the text below and identify passages that read as machine generated rather than human written.
- Quote each passage EXACTLY as it appears in the text, character for character.
- For each passage say whether it is AI generated and give a confidence score between 0 and 1.
- Return a JSON array of findings. Return an empty array if the text reads as fully human written.

TEXT:
%s`, chunk)
	return &ai.Request{Prompt: prompt, Schema: aiDetectionSchema}
}

// ParseFindings keeps only positively flagged passages; spans the model
// judged human written never reach reconstruction.
func (aiDetectionMode) ParseFindings(raw string) ([]Finding, error) {
	var items []AIDetectionFinding
	if err := parseJSONArray(raw, &items); err != nil {
		return nil, err
	}
	findings := make([]Finding, 0, len(items))
	for _, item := range items {
		if !item.IsAIGenerated {
			continue
		}
		findings = append(findings, Finding{
			Text:       item.Text,
			Confidence: item.ConfidenceScore,
		})
	}
	return findings, nil
}
