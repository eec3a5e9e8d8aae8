package validator

import (
	"strings"
	"unicode"

	"github.com/jala-youth/jala-web/internal/model"
)

// PhoneResult reports whether a phone number is acceptable and, if not, the
// guidance to show next to the field.
type PhoneResult struct {
	Valid   bool
	Message string
}

// ValidatePhone accepts exactly 10 digits starting with 0.
func ValidatePhone(value string) PhoneResult {
	if err := validate.Var(value, "required,phone"); err != nil {
		msg := MsgPhoneInvalid
		if value == "" {
			msg = MsgPhoneRequired
		}
		return PhoneResult{Message: msg}
	}
	return PhoneResult{Valid: true}
}

// NormalizePhone keeps the digits of value, as the booking form does while
// the visitor types.
func NormalizePhone(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, value)
}

// ValidateEmail applies the permissive local@domain.tld check.
func ValidateEmail(value string) bool {
	return validate.Var(value, "loose_email") == nil
}

// ValidateBooking returns field → message for every violated booking rule.
// An empty map means the request may be sent.
func ValidateBooking(req model.BookingRequest) map[string]string {
	return check(req)
}

// ValidateSubscription returns field → message for the newsletter form.
func ValidateSubscription(req model.SubscriptionRequest) map[string]string {
	return check(req)
}

// ValidateFeedback returns field → message for the feedback form. The role
// defaults to student before checking.
func ValidateFeedback(req model.FeedbackRequest) map[string]string {
	return check(req.WithDefaults())
}

func check(v interface{}) map[string]string {
	if err := validate.Struct(v); err != nil {
		return TranslateErrors(err)
	}
	return map[string]string{}
}
