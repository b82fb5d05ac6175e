package commands_test

import (
	"testing"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"

	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, value string) sku.Code {
	t.Helper()
	code, err := sku.NewCode(value)
	require.NoError(t, err)
	return code
}

func restoredLevel(t *testing.T, code string, staged, filled, cased int) *inventory.Level {
	t.Helper()
	level, err := inventory.RestoreLevel(mustCode(t, code), staged, filled, cased)
	require.NoError(t, err)
	return level
}

func backlogTask(t *testing.T, code string, quantity int, column task.Column) *task.Task {
	t.Helper()
	source, err := task.NewOrderSource(quantity, "Green Leaf")
	require.NoError(t, err)
	created, err := task.NewTask(
		kernel.NewUUID(), mustCode(t, code), quantity, column, task.TierUrgent,
		[]task.Source{source}, time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return created
}
