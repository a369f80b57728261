package service

import (
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/formation-api/internal/dto"
)

var textPolicy = bluemonday.StrictPolicy()

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, invalidInput(field + " must use the YYYY-MM-DD format")
	}
	return parsed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeText(value string) string {
	return strings.TrimSpace(textPolicy.Sanitize(value))
}

func sanitizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	clean := sanitizeText(*value)
	if clean == "" {
		return nil
	}
	return &clean
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const clockLayout = "15:04"

// normalizeClock zero-pads a clock value such as "9:00" to "09:00". Values that
// do not parse are returned trimmed.
func normalizeClock(value string) string {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return value
	}
	return parsed.Format(clockLayout)
}

// clockOrdered reports whether start is strictly before end. Unparseable
// values are never ordered.
func clockOrdered(start, end string) bool {
	startAt, err := time.Parse(clockLayout, strings.TrimSpace(start))
	if err != nil {
		return false
	}
	endAt, err := time.Parse(clockLayout, strings.TrimSpace(end))
	if err != nil {
		return false
	}
	return startAt.Before(endAt)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// maskEmailAddress keeps the first and last character of the local part for logs.
func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	domain := parts[1]
	if len(local) <= 2 {
		local = local[:1] + "***"
	} else {
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + domain
}
