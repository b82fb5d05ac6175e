package task_test

import (
	"testing"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_Advance(t *testing.T) {
	tests := []struct {
		name    string
		from    task.Column
		want    task.Column
		wantErr bool
	}{
		{"to-fill advances to to-case", task.ColumnToFill, task.ColumnToCase, false},
		{"to-case advances to done", task.ColumnToCase, task.ColumnDone, false},
		{"done cannot advance", task.ColumnDone, task.ColumnUnknown, true},
		{"unknown cannot advance", task.ColumnUnknown, task.ColumnUnknown, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.from.Advance()
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestColumn_Revert(t *testing.T) {
	tests := []struct {
		name    string
		from    task.Column
		want    task.Column
		wantErr bool
	}{
		{"to-case reverts to to-fill", task.ColumnToCase, task.ColumnToFill, false},
		{"done reverts to to-case", task.ColumnDone, task.ColumnToCase, false},
		{"to-fill cannot revert", task.ColumnToFill, task.ColumnUnknown, true},
		{"unknown cannot revert", task.ColumnUnknown, task.ColumnUnknown, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.from.Revert()
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestColumn_InputStage(t *testing.T) {
	stage, err := task.ColumnToFill.InputStage()
	require.NoError(t, err)
	assert.Equal(t, inventory.StageStaged, stage)

	stage, err = task.ColumnToCase.InputStage()
	require.NoError(t, err)
	assert.Equal(t, inventory.StageFilled, stage)

	_, err = task.ColumnDone.InputStage()
	require.Error(t, err)
}

func TestColumnFromString(t *testing.T) {
	t.Run("parses valid columns", func(t *testing.T) {
		tests := map[string]task.Column{
			"TO_FILL": task.ColumnToFill,
			"TO_CASE": task.ColumnToCase,
			"DONE":    task.ColumnDone,
		}

		for wire, want := range tests {
			got, err := task.ColumnFromString(wire)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, wire := range []string{"", "to_fill", "UNKNOWN", "SHIPPED"} {
			_, err := task.ColumnFromString(wire)
			require.Error(t, err)
		}
	})
}

func TestColumn_String(t *testing.T) {
	assert.Equal(t, "TO_FILL", task.ColumnToFill.String())
	assert.Equal(t, "TO_CASE", task.ColumnToCase.String())
	assert.Equal(t, "DONE", task.ColumnDone.String())
	assert.Equal(t, "UNKNOWN", task.Column(42).String())
}

func TestTier(t *testing.T) {
	t.Run("orders by urgency", func(t *testing.T) {
		assert.True(t, task.TierUrgent.Before(task.TierTomorrow))
		assert.True(t, task.TierTomorrow.Before(task.TierUpcoming))
		assert.True(t, task.TierUpcoming.Before(task.TierBackfill))
		assert.False(t, task.TierBackfill.Before(task.TierUrgent))
	})

	t.Run("validates", func(t *testing.T) {
		for _, tier := range []task.Tier{task.TierUrgent, task.TierTomorrow, task.TierUpcoming, task.TierBackfill} {
			require.NoError(t, tier.Validate())
		}
		require.Error(t, task.TierUnknown.Validate())
	})

	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "URGENT", task.TierUrgent.String())
		assert.Equal(t, "BACKFILL", task.TierBackfill.String())
	})
}

func TestStatus(t *testing.T) {
	require.NoError(t, task.StatusActive.Validate())
	require.NoError(t, task.StatusBlocked.Validate())
	require.Error(t, task.StatusUnknown.Validate())

	assert.Equal(t, "ACTIVE", task.StatusActive.String())
	assert.Equal(t, "BLOCKED", task.StatusBlocked.String())
}
