package capability

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"zero-actions/internal/models"
)

// NewAssist picks the assist arm by key presence: OpenAI when a key is
// configured, canned otherwise. No external AI service is ever assumed.
func NewAssist(apiKey string, timeoutSeconds int) Assist {
	if apiKey == "" {
		return CannedAssist{}
	}
	return NewOpenAIAssist(apiKey, timeoutSeconds)
}

// CannedAssist is the default assist arm: deterministic output, no
// external calls.
type CannedAssist struct{}

// Provider implements Assist.
func (CannedAssist) Provider() string { return "canned" }

// Summarize prefers the card's own summary, then the leading sentences of
// the body, then the title. It never fails.
func (CannedAssist) Summarize(_ context.Context, card *models.EmailCard) (string, error) {
	if s := strings.TrimSpace(card.Summary); s != "" {
		return s, nil
	}
	if s := firstSentences(card.Body, 2); s != "" {
		return s, nil
	}
	return card.Title, nil
}

var cannedReplies = map[string][]string{
	"friendly": {
		"Thanks so much, got it!",
		"Sounds good, see you then!",
		"Thanks for the heads up!",
	},
	"formal": {
		"Thank you for the update.",
		"Acknowledged. I will follow up shortly.",
		"Much appreciated, I have noted this.",
	},
	"brief": {
		"Got it.",
		"Thanks!",
		"Will do.",
	},
}

// SuggestReplies returns three tone-appropriate stock replies. Unknown
// tones get the friendly set.
func (CannedAssist) SuggestReplies(_ context.Context, _ *models.EmailCard, tone string) ([]string, error) {
	replies, ok := cannedReplies[strings.ToLower(strings.TrimSpace(tone))]
	if !ok {
		replies = cannedReplies["friendly"]
	}
	out := make([]string, len(replies))
	copy(out, replies)
	return out, nil
}

// firstSentences returns up to n sentences of text, capped at 240 chars.
func firstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	count := 0
	end := len(text)
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				end = i + 1
				break
			}
		}
	}
	out := strings.TrimSpace(text[:end])
	if len(out) > 240 {
		cut := 240
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimSpace(out[:cut]) + "…"
	}
	return out
}

// OpenAIAssist asks OpenAI for summaries and replies, degrading to the
// canned arm on any upstream failure rather than failing the request.
type OpenAIAssist struct {
	client  *openai.Client
	timeout time.Duration
	canned  CannedAssist
}

// NewOpenAIAssist creates the OpenAI-backed assist arm.
func NewOpenAIAssist(apiKey string, timeoutSeconds int) *OpenAIAssist {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	return &OpenAIAssist{
		client:  openai.NewClient(apiKey),
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// Provider implements Assist.
func (a *OpenAIAssist) Provider() string { return "openai" }

// Summarize implements Assist.
func (a *OpenAIAssist) Summarize(ctx context.Context, card *models.EmailCard) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Summarize the email in one or two short sentences. State only what the email says.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: card.Text(),
			},
		},
		MaxTokens:   120,
		Temperature: 0.2,
	})
	if err != nil || len(resp.Choices) == 0 {
		return a.canned.Summarize(ctx, card)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return a.canned.Summarize(ctx, card)
	}
	return summary, nil
}

// SuggestReplies implements Assist.
func (a *OpenAIAssist) SuggestReplies(ctx context.Context, card *models.EmailCard, tone string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if tone == "" {
		tone = "friendly"
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Write three short " + tone + " reply suggestions for the email, one per line, no numbering.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: card.Text(),
			},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil || len(resp.Choices) == 0 {
		return a.canned.SuggestReplies(ctx, card, tone)
	}

	var suggestions []string
	for _, line := range strings.Split(resp.Choices[0].Message.Content, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			suggestions = append(suggestions, line)
		}
		if len(suggestions) == 3 {
			break
		}
	}
	if len(suggestions) == 0 {
		return a.canned.SuggestReplies(ctx, card, tone)
	}
	return suggestions, nil
}
