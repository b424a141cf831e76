package api

// MaxCodeLength bounds the snippet accepted by the analyze endpoint.
const MaxCodeLength = 100_000

// AnalyzeRequest is the payload for POST /api/analyze.
type AnalyzeRequest struct {
	Code     string `json:"code"     validate:"max=100000"`
	Language string `json:"language" validate:"max=64"`
	Mode     string `json:"mode"     validate:"max=32"`
}

// AnalyzeResponse is the successful response for POST /api/analyze.
type AnalyzeResponse struct {
	// HTML is the rendered analysis, ready to be injected into the page.
	HTML string `json:"html"`

	// Mode is the analysis mode actually used.
	Mode string `json:"mode"`

	// Markdown is the raw model output, only included when requested with
	// ?raw=1.
	Markdown string `json:"markdown,omitempty"`
}
