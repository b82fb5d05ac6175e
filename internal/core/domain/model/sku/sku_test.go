package sku_test

import (
	"testing"

	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("creates valid code", func(t *testing.T) {
		code, err := sku.NewCode("BG")

		require.NoError(t, err)
		assert.Equal(t, "BG", code.String())
		assert.NoError(t, code.Validate())
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		code, err := sku.NewCode("  vz-1g ")

		require.NoError(t, err)
		assert.Equal(t, "VZ-1G", code.String())
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := sku.NewCode("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := sku.NewCode("BG 1G")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects overlong code", func(t *testing.T) {
		_, err := sku.NewCode("ABCDEFGHIJKLMNOPQ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCode_Less(t *testing.T) {
	bg := mustCode(t, "BG")
	cr := mustCode(t, "CR")

	assert.True(t, bg.Less(cr))
	assert.False(t, cr.Less(bg))
	assert.False(t, bg.Less(bg))
}

func TestCode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var code sku.Code
		require.Error(t, code.Validate())
	})
}

func TestNewSKU(t *testing.T) {
	t.Run("creates valid SKU", func(t *testing.T) {
		code := mustCode(t, "BG")

		entry, err := sku.NewSKU(code, "Berry Gelato 1g", "gelato")

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, "BG", entry.Code().String())
		assert.Equal(t, "Berry Gelato 1g", entry.Name())
		assert.Equal(t, "gelato", entry.Family())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		code := mustCode(t, "BG")

		_, err := sku.NewSKU(code, "", "gelato")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing family", func(t *testing.T) {
		code := mustCode(t, "BG")

		_, err := sku.NewSKU(code, "Berry Gelato 1g", "")

		require.Error(t, err)
	})

	t.Run("rejects zero value code", func(t *testing.T) {
		var code sku.Code

		_, err := sku.NewSKU(code, "Berry Gelato 1g", "gelato")

		require.Error(t, err)
	})
}

func TestSKU_IsEqual(t *testing.T) {
	code := mustCode(t, "BG")
	entry1, err := sku.NewSKU(code, "Berry Gelato 1g", "gelato")
	require.NoError(t, err)
	entry2, err := sku.NewSKU(code, "Renamed", "other")
	require.NoError(t, err)

	assert.True(t, entry1.IsEqual(entry2))
	assert.False(t, entry1.IsEqual(nil))
}

func TestSKU_Validate_ZeroValue(t *testing.T) {
	var entry sku.SKU
	err := entry.Validate()
	require.Error(t, err)
	assert.Equal(t, sku.ErrSKUIsNotConstructed, err)
}

func mustCode(t *testing.T, value string) sku.Code {
	t.Helper()
	code, err := sku.NewCode(value)
	require.NoError(t, err)
	return code
}
