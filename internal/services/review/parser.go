package review

import (
	"strings"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// sectionLabels in response order. Matching tolerates markdown dressing
// ("## Entry Quality", "**Entry Quality:**", "1. Entry Quality") since
// the model's formatting varies.
var sectionLabels = []string{
	models.FeedbackSectionEntry,
	models.FeedbackSectionExit,
	models.FeedbackSectionRisk,
	models.FeedbackSectionExecution,
}

// ParseFeedback extracts the four labeled sections from a raw response.
// When any label is missing the whole text is returned as unstructured
// feedback — a degraded but successful result, never an error.
func ParseFeedback(raw string) *models.TradeFeedback {
	sections := splitSections(raw)
	if sections == nil {
		return &models.TradeFeedback{Structured: false, Raw: raw}
	}
	return &models.TradeFeedback{
		Structured: true,
		Entry:      sections[models.FeedbackSectionEntry],
		Exit:       sections[models.FeedbackSectionExit],
		Risk:       sections[models.FeedbackSectionRisk],
		Execution:  sections[models.FeedbackSectionExecution],
		Raw:        raw,
	}
}

// splitSections walks the response line by line, collecting text under
// each recognized label. Returns nil unless all four labels were found.
func splitSections(raw string) map[string]string {
	collected := make(map[string]*strings.Builder)
	var current *strings.Builder

	for _, line := range strings.Split(raw, "\n") {
		if label, rest, ok := matchLabel(line); ok {
			b := &strings.Builder{}
			if rest != "" {
				b.WriteString(rest)
			}
			collected[label] = b
			current = b
			continue
		}
		if current != nil {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}

	if len(collected) < len(sectionLabels) {
		return nil
	}

	out := make(map[string]string, len(collected))
	for label, b := range collected {
		out[label] = strings.TrimSpace(b.String())
	}
	return out
}

// matchLabel tests whether a line begins a labeled section, returning the
// canonical label and any text following the label on the same line.
func matchLabel(line string) (label, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "#*-0123456789. ")
	trimmed = strings.TrimSpace(trimmed)

	for _, l := range sectionLabels {
		if len(trimmed) < len(l) || !strings.EqualFold(trimmed[:len(l)], l) {
			continue
		}
		rest = strings.TrimSpace(trimmed[len(l):])
		rest = strings.TrimLeft(rest, ":*")
		return l, strings.TrimSpace(rest), true
	}
	return "", "", false
}
