package helpers

import (
	"regexp"
	"strings"
)

var (
	indianMobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pinCodeRe      = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	nonDigitRe     = regexp.MustCompile(`\D`)
)

func stripNonDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ValidatePhone accepts Indian mobile numbers: ten digits starting with
// 6-9, ignoring any formatting characters.
func ValidatePhone(phone string) bool {
	return indianMobileRe.MatchString(stripNonDigits(phone))
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidatePinCode(pinCode string) bool {
	return pinCodeRe.MatchString(pinCode)
}

// Rule describes the checks applied to a single form field.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Message   string
	Email     bool
	Phone     bool
}

// ValidateForm checks each field against its rule and returns one message
// per failing field. An empty map means the form is valid. Optional fields
// are only checked when a value is present.
func ValidateForm(data map[string]string, rules map[string]Rule) map[string]string {
	errs := make(map[string]string)
	for field, rule := range rules {
		value := data[field]
		if rule.Required && strings.TrimSpace(value) == "" {
			errs[field] = field + " is required"
			continue
		}
		if value == "" {
			continue
		}
		if rule.MinLength > 0 && len(value) < rule.MinLength {
			errs[field] = field + " is too short"
			continue
		}
		if rule.MaxLength > 0 && len(value) > rule.MaxLength {
			errs[field] = field + " is too long"
			continue
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
			if rule.Message != "" {
				errs[field] = rule.Message
			} else {
				errs[field] = field + " format is invalid"
			}
			continue
		}
		if rule.Email && !ValidateEmail(value) {
			errs[field] = field + " must be a valid email address"
			continue
		}
		if rule.Phone && !ValidatePhone(value) {
			errs[field] = field + " must be a valid phone number"
			continue
		}
	}
	return errs
}
