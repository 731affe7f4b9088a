package analysis

import (
	"fmt"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
)

type humanizeMode struct{}

func (humanizeMode) Kind() Kind {
	return KindHumanize
}

var humanizeTones = map[string]string{
	ToneDefault:  "Keep a natural, neutral register.",
	ToneCasual:   "Use a relaxed, conversational register with everyday vocabulary.",
	ToneAcademic: "Use a formal, scholarly register with precise vocabulary.",
	ToneCreative: "Use vivid, expressive language with varied rhythm.",
	ToneConcise:  "Be brief and direct; cut every word that is not needed.",
}

func (humanizeMode) BuildRequest(chunk string, opts Options) *ai.Request {
	tone := humanizeTones[opts.Tone]
	if tone == "" {
		tone = humanizeTones[ToneDefault]
	}
	prompt := fmt.Sprintf(`You are a professional editor.
Rewrite the text below so it reads as naturally human written: vary sentence length, avoid formulaic phrasing, keep the original meaning intact.
- %s
- Use the same language as the text.
- Do not add explanations or commentary.
- Output ONLY the rewritten text.

TEXT:
%s`, tone, chunk)
	return &ai.Request{Prompt: prompt}
}

type summarizeMode struct{}

func (summarizeMode) Kind() Kind {
	return KindSummarize
}

var summaryLengths = map[string]string{
	SummaryShort:    "Summarize in 1-2 sentences.",
	SummaryMedium:   "Summarize in a concise paragraph of 3-5 sentences.",
	SummaryDetailed: "Summarize in several paragraphs, keeping all key points and supporting detail.",
}

func (summarizeMode) BuildRequest(chunk string, opts Options) *ai.Request {
	length := summaryLengths[opts.SummaryLength]
	if length == "" {
		length = summaryLengths[SummaryMedium]
	}
	prompt := fmt.Sprintf(`You are a helpful assistant.
Summarize the text below.
- %s
- Use the same language as the text.
- Keep factual accuracy.
- Output ONLY the summary text.

TEXT:
%s`, length, chunk)
	return &ai.Request{Prompt: prompt}
}
