// Package sku holds the product reference data for the packaging pipeline.
// SKUs are immutable catalog entries maintained outside the production core;
// the core references them by Code and reads the catalog only for display
// names and family grouping on the dashboard.
package sku

import (
	"errors"

	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

// ErrSKUIsNotConstructed is returned when using an improperly initialized SKU.
var ErrSKUIsNotConstructed = errors.New("SKU must be created via NewSKU constructor")

// SKU is an immutable catalog entry describing one packagable product.
// Two parallel variants of the same product line share a family, which the
// dashboard uses to group inventory rows.
//
// Example usage:
//
//	code, _ := sku.NewCode("BG")
//	entry, err := sku.NewSKU(code, "Berry Gelato 1g", "gelato")
//	if err != nil {
//	    return err
//	}
type SKU struct {
	// code uniquely identifies the SKU
	code Code
	// name is the human-readable display name
	name string
	// family groups parallel variants of the same product line
	family string
	// guard ensures the SKU was properly constructed
	guard guard.ConstructorGuard
}

// NewSKU creates a catalog entry with the specified code, display name, and
// family grouping. All parameters are validated; validation errors are
// aggregated and returned as a single error.
func NewSKU(code Code, name string, family string) (*SKU, error) {
	entry := &SKU{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setCode(code),
		entry.setName(name),
		entry.setFamily(family),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// IsEqual compares two SKUs by code. Catalog entries are reference data, so
// identity is the code, not the display attributes.
func (s *SKU) IsEqual(other *SKU) bool {
	return other != nil && s.code.IsEqual(other.code)
}

// Code returns the unique code of the SKU.
func (s *SKU) Code() Code {
	return s.code
}

// Name returns the human-readable display name.
func (s *SKU) Name() string {
	return s.name
}

// Family returns the product line family this SKU belongs to.
func (s *SKU) Family() string {
	return s.family
}

// Validate checks if the SKU was properly constructed via NewSKU.
func (s *SKU) Validate() error {
	if s == nil {
		return ErrSKUIsNotConstructed
	}
	return s.guard.Validate(ErrSKUIsNotConstructed)
}

func (s *SKU) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	s.code = code
	return nil
}

func (s *SKU) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	s.name = name
	return nil
}

func (s *SKU) setFamily(family string) error {
	if family == "" {
		return errs.NewValueIsRequiredError("family")
	}

	s.family = family
	return nil
}
