package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// weekInput returns a huh.Input for a semester week, defaulting to 1 when blank.
func weekInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Week (1-16)").
		Placeholder("1").
		Value(value).
		Validate(validateWeek)
}

// requiredInput returns a huh.Input that rejects blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", strings.ToLower(title))
			}
			return nil
		})
}
