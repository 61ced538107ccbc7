package uploader

import (
	"fmt"
	"time"
	"unicode"
)

const defaultCustomerName = "Unknown"

// BuildFolderName derives the destination folder name from the current
// local time and the customer name, e.g. "2026-08-30_1415_Jane_Doe".
func BuildFolderName(now time.Time, customerName string) string {
	return fmt.Sprintf("%s_%s_%s",
		now.Format("2006-01-02"),
		now.Format("1504"),
		sanitizeCustomerName(customerName))
}

// sanitizeCustomerName replaces everything outside the allow-set
// (letters, digits, underscore, hyphen) with an underscore.
func sanitizeCustomerName(name string) string {
	if name == "" {
		return defaultCustomerName
	}

	sanitized := []rune(name)
	for i, char := range sanitized {
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' {
			sanitized[i] = '_'
		}
	}

	return string(sanitized)
}
