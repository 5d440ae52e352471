package actions

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zero-actions/internal/models"
)

var titleCaser = cases.Title(language.English)

// displayTitle prefers the action's own display name, falling back to a
// title-cased form of the type ("track_package" -> "Track Package").
func displayTitle(action *models.EmailAction) string {
	if action.DisplayName != "" {
		return action.DisplayName
	}
	return titleCaser.String(strings.ReplaceAll(string(action.Type), "_", " "))
}

// appendRow adds a detail row unless the value is blank. Missing data is
// omitted, never rendered as an error.
func appendRow(rows []models.DetailRow, label, value string) []models.DetailRow {
	if strings.TrimSpace(value) == "" {
		return rows
	}
	return append(rows, models.DetailRow{Label: label, Value: value})
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func successBanner(title, message string) models.Banner {
	return models.Banner{Kind: models.BannerSuccess, Title: title, Message: message}
}

func warningBanner(title, message string) models.Banner {
	return models.Banner{Kind: models.BannerWarning, Title: title, Message: message}
}

func openURL(url string) models.Directive {
	return models.Directive{Kind: models.DirectiveOpenURL, URL: url}
}

func composeEmail(to, subject, body string) models.Directive {
	return models.Directive{
		Kind: models.DirectiveComposeEmail,
		Payload: map[string]string{
			"to":      to,
			"subject": subject,
			"body":    body,
		},
	}
}

func composeSMS(to, body string) models.Directive {
	return models.Directive{
		Kind: models.DirectiveComposeSMS,
		Payload: map[string]string{
			"to":   to,
			"body": body,
		},
	}
}

func placeCall(phone string) models.Directive {
	return models.Directive{Kind: models.DirectivePlaceCall, URL: telURL(phone)}
}

func addCalendar(title, date, location string) models.Directive {
	payload := map[string]string{"title": title, "date": date}
	if location != "" {
		payload["location"] = location
	}
	return models.Directive{Kind: models.DirectiveAddCalendar, Payload: payload}
}

func addReminder(title, date string) models.Directive {
	return models.Directive{
		Kind:    models.DirectiveAddReminder,
		Payload: map[string]string{"title": title, "date": date},
	}
}

func addWalletPass(passType, barcode string) models.Directive {
	payload := map[string]string{}
	if passType != "" {
		payload["passType"] = passType
	}
	if barcode != "" {
		payload["barcode"] = barcode
	}
	return models.Directive{Kind: models.DirectiveAddWalletPass, Payload: payload}
}

func shareSheet(url, text string) models.Directive {
	payload := map[string]string{}
	if url != "" {
		payload["url"] = url
	}
	if text != "" {
		payload["text"] = text
	}
	return models.Directive{Kind: models.DirectiveShare, Payload: payload}
}

func mapsDirections(address string) models.Directive {
	return models.Directive{
		Kind:    models.DirectiveMaps,
		Payload: map[string]string{"destination": address},
	}
}

// telURL builds a tel: URL from a free-form phone string, keeping digits
// and a leading plus.
func telURL(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
