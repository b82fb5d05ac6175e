package sku

import (
	"fmt"
	"strings"

	"packline/internal/pkg/errs"
)

// maxCodeLength bounds SKU codes to what the label printers accept.
const maxCodeLength = 16

// Code is a value object identifying a stock keeping unit. Inventory levels,
// tasks, and intake records all reference products by Code rather than owning
// the SKU reference data.
//
// A Code is a non-empty, upper-case alphanumeric string (dashes allowed).
// The zero value is invalid; construct codes through NewCode.
//
// Example usage:
//
//	code, err := sku.NewCode("BG")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(code.String()) // "BG"
type Code struct {
	value string
}

// NewCode creates a Code from its string form, normalizing to upper case.
//
// Validation rules:
//   - must not be empty after trimming whitespace
//   - must not exceed 16 characters
//   - characters must be letters, digits, or dashes
//
// Returns a ValueIsRequiredError or ValueIsInvalidError on violation.
func NewCode(value string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return Code{}, errs.NewValueIsRequiredError("sku code")
	}

	if len(normalized) > maxCodeLength {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(
			"sku code",
			fmt.Errorf("%q is longer than %d characters", normalized, maxCodeLength),
		)
	}

	for _, r := range normalized {
		if !isCodeRune(r) {
			return Code{}, errs.NewValueIsInvalidErrorWithCause(
				"sku code",
				fmt.Errorf("%q contains invalid character %q", normalized, r),
			)
		}
	}

	return Code{value: normalized}, nil
}

func isCodeRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return true
	}
	return false
}

// String returns the canonical upper-case form of the code.
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Less reports whether this code sorts before the other. Used for the
// deterministic SKU-code-ascending ordering of planner output and snapshots.
func (c Code) Less(other Code) bool {
	return c.value < other.value
}

// Validate checks if the Code was properly constructed.
// Returns a ValueIsRequiredError if the code is the zero value.
func (c Code) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("sku code")
	}
	return nil
}
