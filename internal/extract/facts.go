package extract

import "strings"

var priceLadder = NewLadder("price",
	Pattern("dollar_sign", `\$\s*([\d,]+(?:\.\d{2})?)`),
	Pattern("currency_code", `(?i)\bUSD\s*([\d,]+(?:\.\d{2})?)`),
	Pattern("spelled_out", `(?i)\b([\d,]+(?:\.\d{2})?)\s+dollars\b`),
)

// Price finds a currency amount and normalizes it to a $-prefixed string,
// so "USD 30" and "30 dollars" both come back as "$30".
func Price(text string) (string, bool) {
	amount, ok := priceLadder.Extract(text)
	if !ok {
		return "", false
	}
	return "$" + amount, true
}

var accessCodeLadder = NewLadder("access_code",
	Pattern("code_labelled", `(?i)\b(?:gate|door|access|entry|security|verification)?\s?code[:\s]*#?\s*(\d{4,8})\b`),
	Pattern("pin_labelled", `(?i)\bpin[:\s]*#?\s*(\d{4,8})\b`),
	Fallback(Pattern("bare_digits", `\b(\d{4,6})\b`)),
)

// AccessCode finds an entry or verification code. Labelled codes such as
// "gate code: 4821" outrank bare 4-6 digit runs.
func AccessCode(text string) (string, bool) {
	return accessCodeLadder.Extract(text)
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}

// The label is matched case-insensitively but the code itself must be
// uppercase, so prose after "booking" or "tracking" is never captured.
var confirmationLadder = NewLadder("confirmation_code",
	Pattern("labelled", `\b(?i:confirmation|booking|reservation|reference|record\s+locator)(?i:\s+(?:number|code|no\.?))?\s*(?:#|:|(?i:is))?\s*([A-Z0-9]{5,8})\b`),
	Fallback(PatternFunc("bare_locator", `\b([A-Z0-9]{6})\b`, containsLetter)),
)

// ConfirmationCode finds a booking confirmation or record locator. The
// labelled form wins; the bare form is a 6-char uppercase alphanumeric run
// that contains at least one letter.
func ConfirmationCode(text string) (string, bool) {
	code, ok := confirmationLadder.Extract(text)
	if !ok {
		return "", false
	}
	return strings.ToUpper(code), true
}

var trackingLadder = NewLadder("tracking_number",
	Pattern("labelled", `\b(?i:tracking)(?i:\s+(?:number|no\.?))?\s*(?:#|:)?\s*([A-Z0-9]{8,30})\b`),
	Pattern("ups", `\b(1Z[0-9A-Z]{16})\b`),
	Pattern("usps", `\b(9[2-4]\d{18,20})\b`),
	Fallback(Pattern("fedex", `\b(\d{12}|\d{15})\b`)),
)

// TrackingNumber finds a shipment tracking number, labelled first, then by
// carrier format (UPS 1Z, USPS 92/93/94 prefixes, FedEx 12 or 15 digits).
func TrackingNumber(text string) (string, bool) {
	num, ok := trackingLadder.Extract(text)
	if !ok {
		return "", false
	}
	return strings.ToUpper(num), true
}

var phoneLadder = NewLadder("phone",
	Pattern("labelled", `(?i)\b(?:call|phone|tel|contact)(?:\s+us)?(?:\s+at)?\s*:?\s*(\+?1?[\s.(-]*\d{3}[\s.)-]*\d{3}[\s.-]*\d{4})\b`),
	Fallback(Pattern("bare", `(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`)),
)

// Phone finds a North American phone number, labelled forms first.
func Phone(text string) (string, bool) {
	return phoneLadder.Extract(text)
}

const (
	monthPat   = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	weekdayPat = `(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	// month-day, day-month, or numeric date, no year required
	dateishPat = monthPat + `\s+\d{1,2}(?:,\s*\d{4})?|\d{1,2}\s+` + monthPat + `|\d{1,2}/\d{1,2}(?:/\d{2,4})?`
)

var saleEndLadder = NewLadder("sale_end_date",
	Pattern("ends_phrase", `(?i)\b(?:sale\s+)?ends?\s+(?:on\s+)?(`+dateishPat+`)`),
	Pattern("ends_weekday", `(?i)\b(?:sale\s+)?ends?\s+(?:on\s+)?(`+weekdayPat+`)`),
	Pattern("through_phrase", `(?i)\bthrough\s+(`+dateishPat+`)`),
	Pattern("until_phrase", `(?i)\b(?:valid\s+)?until\s+(`+dateishPat+`|`+weekdayPat+`)`),
)

// SaleEndDate finds the textual end date of a sale ("ends October 31",
// "through 10/31"). The phrase is returned raw for the date ladder.
func SaleEndDate(text string) (string, bool) {
	return saleEndLadder.Extract(text)
}

var bedroomsLadder = NewLadder("bedrooms",
	Pattern("labelled", `(?i)\b(\d+)[\s-]*(?:bed(?:room)?s?|br)\b`),
)

// Bedrooms finds a bedroom count in real-estate listing text.
func Bedrooms(text string) (string, bool) {
	return bedroomsLadder.Extract(text)
}

var likesLadder = NewLadder("likes",
	Pattern("labelled", `(?i)\b([\d,]+)\s+(?:new\s+)?likes?\b`),
)

var commentsLadder = NewLadder("comments",
	Pattern("labelled", `(?i)\b([\d,]+)\s+(?:new\s+)?comments?\b`),
)

// Likes finds a like count in social notification text.
func Likes(text string) (string, bool) {
	return likesLadder.Extract(text)
}

// Comments finds a comment count in social notification text.
func Comments(text string) (string, bool) {
	return commentsLadder.Extract(text)
}

// Facts runs every extractor over the text and returns the hits keyed by
// fact name. Only labelled rules contribute here; a bare digit run is not
// evidence of anything without an action expecting it. Misses are omitted,
// never present as empty strings.
func Facts(text string) map[string]string {
	facts := make(map[string]string)
	set := func(key string, ladder *Ladder, normalize func(string) string) {
		if v, ok := ladder.ExtractStrict(text); ok {
			if normalize != nil {
				v = normalize(v)
			}
			facts[key] = v
		}
	}
	dollar := func(v string) string { return "$" + v }
	set("price", priceLadder, dollar)
	set("accessCode", accessCodeLadder, nil)
	set("confirmationCode", confirmationLadder, strings.ToUpper)
	set("trackingNumber", trackingLadder, strings.ToUpper)
	set("phone", phoneLadder, nil)
	set("saleEndDate", saleEndLadder, nil)
	set("bedrooms", bedroomsLadder, nil)
	set("likes", likesLadder, nil)
	set("comments", commentsLadder, nil)
	return facts
}
