package capability

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zero-actions/internal/models"
)

func TestNewAssist_ArmSelection(t *testing.T) {
	assert.Equal(t, "canned", NewAssist("", 30).Provider())
	assert.Equal(t, "openai", NewAssist("sk-test", 30).Provider())
}

func TestCannedAssist_Summarize(t *testing.T) {
	tests := []struct {
		name     string
		card     models.EmailCard
		expected string
	}{
		{
			name: "card summary wins",
			card: models.EmailCard{
				Title:   "Order shipped",
				Summary: "Your order is on the way.",
				Body:    "Lots of body text. With sentences.",
			},
			expected: "Your order is on the way.",
		},
		{
			name: "whitespace summary falls through to body",
			card: models.EmailCard{
				Title:   "Order shipped",
				Summary: "   ",
				Body:    "First sentence. Second sentence. Third sentence.",
			},
			expected: "First sentence. Second sentence.",
		},
		{
			name: "body without terminators is used whole",
			card: models.EmailCard{
				Title: "Order shipped",
				Body:  "no terminator in this body",
			},
			expected: "no terminator in this body",
		},
		{
			name:     "empty body falls through to title",
			card:     models.EmailCard{Title: "Order shipped"},
			expected: "Order shipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CannedAssist{}.Summarize(context.Background(), &tt.card)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFirstSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected string
	}{
		{
			name:     "takes leading sentences",
			text:     "One. Two! Three?",
			n:        2,
			expected: "One. Two!",
		},
		{
			name:     "fewer sentences than requested",
			text:     "Only one here.",
			n:        2,
			expected: "Only one here.",
		},
		{
			name:     "empty input",
			text:     "   ",
			n:        2,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstSentences(tt.text, tt.n))
		})
	}
}

func TestFirstSentences_CapsLongOutput(t *testing.T) {
	text := strings.Repeat("x", 250) + ". More."

	got := firstSentences(text, 2)

	assert.Equal(t, strings.Repeat("x", 240)+"…", got)
}

func TestCannedAssist_SuggestReplies(t *testing.T) {
	card := &models.EmailCard{Title: "Team lunch"}

	tests := []struct {
		name     string
		tone     string
		expected []string
	}{
		{
			name:     "friendly",
			tone:     "friendly",
			expected: cannedReplies["friendly"],
		},
		{
			name:     "formal with mixed case and padding",
			tone:     " Formal ",
			expected: cannedReplies["formal"],
		},
		{
			name:     "brief",
			tone:     "brief",
			expected: cannedReplies["brief"],
		},
		{
			name:     "unknown tone defaults to friendly",
			tone:     "sarcastic",
			expected: cannedReplies["friendly"],
		},
		{
			name:     "empty tone defaults to friendly",
			tone:     "",
			expected: cannedReplies["friendly"],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CannedAssist{}.SuggestReplies(context.Background(), card, tt.tone)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, 3)
		})
	}
}

func TestCannedAssist_SuggestReplies_ReturnsCopy(t *testing.T) {
	card := &models.EmailCard{Title: "Team lunch"}

	first, err := CannedAssist{}.SuggestReplies(context.Background(), card, "brief")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := CannedAssist{}.SuggestReplies(context.Background(), card, "brief")
	require.NoError(t, err)
	assert.Equal(t, "Got it.", second[0])
}
