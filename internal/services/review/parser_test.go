package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tradejournal/internal/models"
)

const structuredResponse = `Here is my assessment.

## Entry Quality
Entries were well timed near the opening range break.

**Exit Quality:** Exits left profit on the table in trade 2.

Risk Management: Sizing was consistent; MAE on trade 1 was acceptable.

3. Execution Rating
7/10 - disciplined but exits need work.`

func TestParseFeedback_Structured(t *testing.T) {
	fb := ParseFeedback(structuredResponse)

	require.True(t, fb.Structured)
	assert.Equal(t, "Entries were well timed near the opening range break.", fb.Entry)
	assert.Equal(t, "Exits left profit on the table in trade 2.", fb.Exit)
	assert.Contains(t, fb.Risk, "Sizing was consistent")
	assert.Contains(t, fb.Execution, "7/10")
	assert.Equal(t, structuredResponse, fb.Raw)
}

func TestParseFeedback_MissingLabelFallsBack(t *testing.T) {
	raw := "Entry Quality: fine.\nExit Quality: fine.\nNo risk or rating sections here."
	fb := ParseFeedback(raw)

	assert.False(t, fb.Structured)
	assert.Empty(t, fb.Entry)
	assert.Equal(t, raw, fb.Raw)
}

func TestParseFeedback_FreeTextFallsBack(t *testing.T) {
	raw := "Overall these trades look reasonable, keep journaling."
	fb := ParseFeedback(raw)

	assert.False(t, fb.Structured)
	assert.Equal(t, raw, fb.Raw)
}

type stubAIClient struct {
	response string
	err      error
}

func (s *stubAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func TestReviewTrades_Success(t *testing.T) {
	svc := NewService(&stubAIClient{response: structuredResponse}, nil)

	fb, err := svc.ReviewTrades(context.Background(), reviewTrades(2))
	require.NoError(t, err)
	assert.True(t, fb.Structured)
}

func TestReviewTrades_TransportFailure(t *testing.T) {
	cause := errors.New("deadline exceeded")
	svc := NewService(&stubAIClient{err: cause}, nil)

	fb, err := svc.ReviewTrades(context.Background(), reviewTrades(1))
	assert.Nil(t, fb)

	var unavailable *models.FeedbackUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.True(t, errors.Is(err, cause))
}

func TestReviewTrades_OverCapNotSent(t *testing.T) {
	svc := NewService(&stubAIClient{response: "should not be called"}, nil)

	_, err := svc.ReviewTrades(context.Background(), reviewTrades(11))

	var tooMany *models.TooManyTradesError
	require.True(t, errors.As(err, &tooMany))
}
