package models

// Feedback section labels expected in AI critique responses. Parsing by
// label is best-effort: a response missing them degrades to unstructured
// text rather than an error.
const (
	FeedbackSectionEntry     = "Entry Quality"
	FeedbackSectionExit      = "Exit Quality"
	FeedbackSectionRisk      = "Risk Management"
	FeedbackSectionExecution = "Execution Rating"
)

// TradeFeedback is the display-ready result of a trade review.
//
// Structured is true when all four labeled sections were extracted from
// the response. When false, only Raw is populated and the caller should
// render the text as-is (degraded but successful).
type TradeFeedback struct {
	Structured bool   `json:"structured"`
	Entry      string `json:"entry_quality,omitempty"`
	Exit       string `json:"exit_quality,omitempty"`
	Risk       string `json:"risk_management,omitempty"`
	Execution  string `json:"execution_rating,omitempty"`
	Raw        string `json:"raw"`
}
