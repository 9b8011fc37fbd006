// Package review builds AI critique requests for selected trades and
// parses the service's responses into display-ready feedback.
package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// MaxReviewTrades caps a single review request to respect the feedback
// service's payload limits. Larger selections are rejected, never
// silently truncated.
const MaxReviewTrades = 10

const promptTimeFormat = "2006-01-02 15:04:05"

// analysisInstruction is the fixed instruction appended to every review
// request. The four labels match the section markers the parser expects.
const analysisInstruction = `Critique the trades above as an experienced futures trading coach.
Structure your response with exactly these four labeled sections:

Entry Quality: assess the timing and location of each entry.
Exit Quality: assess whether exits captured the available move.
Risk Management: assess position sizing and adverse excursion relative to profit.
Execution Rating: give an overall execution rating out of 10 with a one-line justification.

Be specific and reference trades by number.`

// BuildPrompt assembles the deterministic request payload for a selection
// of trades, in input order. Selections over MaxReviewTrades fail with
// TooManyTradesError before anything is sent.
func BuildPrompt(trades []models.Trade) (string, error) {
	if len(trades) == 0 {
		return "", fmt.Errorf("no trades selected for review")
	}
	if len(trades) > MaxReviewTrades {
		return "", &models.TooManyTradesError{Count: len(trades), Max: MaxReviewTrades}
	}

	var sb strings.Builder
	sb.WriteString("Review the following closed futures trades:\n\n")

	for i, t := range trades {
		fmt.Fprintf(&sb, "Trade %d: %s %s x%d\n", i+1, t.Direction, t.Instrument, t.Quantity)
		fmt.Fprintf(&sb, "  Entry: %.2f at %s\n", t.EntryPrice, t.EntryTime.Format(promptTimeFormat))
		fmt.Fprintf(&sb, "  Exit:  %.2f at %s\n", t.ExitPrice, t.ExitTime.Format(promptTimeFormat))
		fmt.Fprintf(&sb, "  Profit: %.2f\n", t.Profit)
		fmt.Fprintf(&sb, "  MAE: %s  MFE: %s\n", formatExcursion(t.MAE), formatExcursion(t.MFE))
		fmt.Fprintf(&sb, "  Duration: %s\n", t.ExitTime.Sub(t.EntryTime).Round(time.Second))
		sb.WriteString("\n")
	}

	sb.WriteString(analysisInstruction)
	return sb.String(), nil
}

// formatExcursion renders an optional MAE/MFE value; nil means the
// platform did not report it.
func formatExcursion(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
