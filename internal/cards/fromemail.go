// Package cards turns raw email messages into triage-feed cards and
// enriches cards with extracted facts and laid-out action chips.
package cards

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"zero-actions/internal/models"
)

const maxBodyChars = 8000

// FromEmail parses one RFC 822 message into a card. The card id comes from
// the Message-ID when present, so re-ingesting the same message yields the
// same id.
func FromEmail(r io.Reader) (*models.EmailCard, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read email message: %w", err)
	}

	header := msg.Header
	card := &models.EmailCard{
		ID:    cardID(header.Get("Message-ID")),
		Title: decodeHeader(header.Get("Subject")),
	}
	if card.Title == "" {
		card.Title = "(no subject)"
	}

	if from := header.Get("From"); from != "" {
		if addr, err := mail.ParseAddress(from); err == nil {
			card.Sender = firstNonBlank(decodeHeader(addr.Name), addr.Address)
			card.SenderEmail = addr.Address
		} else {
			card.Sender = from
		}
	}

	if date, err := header.Date(); err == nil {
		utc := date.UTC()
		card.ReceivedAt = &utc
	}

	body, err := extractBody(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to extract body: %w", err)
	}
	body = strings.TrimSpace(body)
	if len(body) > maxBodyChars {
		cut := maxBodyChars
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	card.Body = body

	card.Category, card.SuggestedActions = suggestActions(card, header.Get("List-Unsubscribe"))
	return card, nil
}

func cardID(messageID string) string {
	messageID = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(messageID), "<"), ">")
	if messageID == "" {
		return uuid.NewString()
	}
	return messageID
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// extractBody walks the MIME structure, preferring text/plain parts and
// falling back to tag-stripped HTML.
func extractBody(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		body, err := io.ReadAll(msg.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		body, readErr := io.ReadAll(msg.Body)
		if readErr != nil {
			return "", readErr
		}
		return string(body), nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipart(msg.Body, params["boundary"])
	}
	content, err := decodePart(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(mediaType, "text/html") {
		return stripHTML(content), nil
	}
	return content, nil
}

func extractMultipart(body io.Reader, boundary string) (string, error) {
	mr := multipart.NewReader(body, boundary)
	var textParts, htmlParts []string

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		mediaType, params, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
		switch {
		case strings.HasPrefix(mediaType, "text/plain"):
			if content, err := decodePart(part, part.Header.Get("Content-Transfer-Encoding")); err == nil {
				textParts = append(textParts, content)
			}
		case strings.HasPrefix(mediaType, "text/html"):
			if content, err := decodePart(part, part.Header.Get("Content-Transfer-Encoding")); err == nil {
				htmlParts = append(htmlParts, content)
			}
		case strings.HasPrefix(mediaType, "multipart/"):
			if nested, ok := params["boundary"]; ok {
				if content, err := extractMultipart(part, nested); err == nil && content != "" {
					textParts = append(textParts, content)
				}
			}
		}
	}

	// Plain text wins over HTML
	if len(textParts) > 0 {
		return strings.Join(textParts, "\n\n"), nil
	}
	if len(htmlParts) > 0 {
		return stripHTML(strings.Join(htmlParts, "\n\n")), nil
	}
	return "", nil
}

func decodePart(body io.Reader, transferEncoding string) (string, error) {
	reader := body
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "quoted-printable":
		reader = quotedprintable.NewReader(body)
	case "base64":
		reader = base64.NewDecoder(base64.StdEncoding, body)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// stripHTML reduces an HTML part to readable text: scripts and styles are
// dropped wholesale, block-level closers become newlines, every other tag
// is removed.
func stripHTML(html string) string {
	html = dropElement(html, "script")
	html = dropElement(html, "style")

	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
		"</p>", "\n\n",
		"</div>", "\n",
	)
	html = replacer.Replace(html)

	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	text := strings.TrimSpace(b.String())
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}

func dropElement(html, tag string) string {
	lower := strings.ToLower(html)
	openTag, closeTag := "<"+tag, "</"+tag+">"
	for {
		start := strings.Index(lower, openTag)
		if start == -1 {
			return html
		}
		end := strings.Index(lower[start:], closeTag)
		if end == -1 {
			return html
		}
		end += start + len(closeTag)
		html = html[:start] + html[end:]
		lower = lower[:start] + lower[end:]
	}
}

func decodeHeader(header string) string {
	decoded, err := new(mime.WordDecoder).DecodeHeader(header)
	if err != nil {
		return header
	}
	return decoded
}
