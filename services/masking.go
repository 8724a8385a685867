package services

import (
	"regexp"
	"strings"
)

const (
	// maskedToken is returned when a value has too few digits to reveal anything
	maskedToken = "****"
	// localPartMask hides the remainder of an email local part
	localPartMask = "***"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// MaskEmail partially redacts an email address for display.
// Up to 3 leading characters of the local part stay visible, the rest is
// replaced with a fixed mask and the domain is kept intact.
// Input without an @ is returned unchanged.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}

	local := email[:at]
	domain := email[at+1:]

	visible := local
	if len(visible) > 3 {
		visible = visible[:3]
	}

	return visible + localPartMask + "@" + domain
}

// MaskPhone redacts a phone number down to its last 4 digits.
// Fewer than 4 digits yields the fully-masked token.
func MaskPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return maskedToken
	}
	return "(***) ***-" + digits[len(digits)-4:]
}

// MaskCedula redacts a Dominican cedula down to its last 4 digits.
// Fewer than 4 digits yields the fully-masked token.
func MaskCedula(cedula string) string {
	digits := nonDigitRegex.ReplaceAllString(cedula, "")
	if len(digits) < 4 {
		return maskedToken
	}
	return "***-*******-" + digits[len(digits)-4:]
}
