package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/maskedit/pkg/mask"
)

// ValidateMask checks that a mask is usable for editing
func ValidateMask(m string) error {
	if m == "" {
		return fmt.Errorf("mask cannot be empty")
	}

	for i := 0; i < len(m); i++ {
		if m[i] >= 0x80 {
			return fmt.Errorf("mask %q contains non-ASCII characters", m)
		}
	}

	if mask.PlaceholderCount(m) == 0 {
		return fmt.Errorf("mask %q has no placeholders (use '9' for a digit slot)", m)
	}

	return nil
}

// ValidateValue checks that value fits into mask. The returned error
// describes the first problem; callers may still use the value.
func ValidateValue(m, value string) error {
	count := mask.PlaceholderCount(m)
	if len(value) > count {
		return fmt.Errorf("value has %d characters but mask %q only has %d slots", len(value), m, count)
	}

	slot := 0
	for i := 0; i < len(m) && slot < len(value); i++ {
		if !mask.IsPlaceholder(m[i]) {
			continue
		}
		if !mask.IsValidForSlot(value[slot], m[i]) {
			return fmt.Errorf("character %q at position %d is not valid for its slot", value[slot], slot)
		}
		slot++
	}

	return nil
}

// ParseOutputFormat validates an output format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", s)
	}
}
