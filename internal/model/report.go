package model

// Report is one stored analysis run. Result holds the JSON-encoded
// outcome (segments+score for detection modes, rewritten text for
// rewrite modes); Score is -1 for rewrite modes.
type Report struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	Options    string `json:"options"`
	InputChars int    `json:"input_chars"`
	Score      int    `json:"score"`
	Result     string `json:"result"`
	Ctime      int64  `json:"ctime"`
}
