package ingest

import (
	"strconv"
	"strings"
	"unicode"
)

// Categories a derived product can land in. Interior is the default; a
// category line only switches to landscape when it names it.
const (
	CategoryInterior  = "interior"
	CategoryLandscape = "landscape"
)

// DefaultProductName is used when a photo arrives without a caption.
const DefaultProductName = "Новый товар"

// ParsedProduct is the result of parsing a free-text product caption.
type ParsedProduct struct {
	Name        string
	Price       int64
	Category    string
	Description string
}

// ParseCaption extracts product fields from a caption. The first line is the
// name; later lines are matched against price and category markers, and
// anything else accumulates into the description with line breaks preserved.
func ParseCaption(text string) ParsedProduct {
	parsed := ParsedProduct{
		Name:     DefaultProductName,
		Category: CategoryInterior,
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		parsed.Name = strings.TrimSpace(lines[0])
	}

	var description strings.Builder
	for _, line := range lines[1:] {
		lower := strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.Contains(lower, "цена") || strings.Contains(lower, "price"):
			if price, ok := extractDigits(line); ok {
				parsed.Price = price
			}
		case strings.Contains(lower, "категория") || strings.Contains(lower, "category"):
			if strings.Contains(lower, "ландшафт") || strings.Contains(lower, "landscape") {
				parsed.Category = CategoryLandscape
			}
		default:
			description.WriteString(line)
			description.WriteString("\n")
		}
	}

	parsed.Description = strings.TrimSpace(description.String())
	return parsed
}

// extractDigits concatenates every digit rune of the line and parses the
// result. "Цена: 15 000 руб." yields 15000.
func extractDigits(line string) (int64, bool) {
	var digits strings.Builder
	for _, r := range line {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	value, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
