package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) IsEmpty() bool {
	return len(v) == 0
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// KRA PIN format: A followed by nine digits and a letter (e.g. A001234567B)
var kraPINRegex = regexp.MustCompile(`^A\d{9}[A-Z]$`)

func IsValidKRAPIN(pin string) bool {
	return kraPINRegex.MatchString(pin)
}

// National ID: 8 digits
var nationalIDRegex = regexp.MustCompile(`^\d{8}$`)

func IsValidNationalID(id string) bool {
	return nationalIDRegex.MatchString(id)
}

// IsValidPercent reports whether p is in the inclusive range [0, 100].
func IsValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(decimal.NewFromInt(100))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
