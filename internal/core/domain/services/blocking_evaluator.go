package services

import (
	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/task"
)

// BlockingEvaluator is a domain service that refreshes the advisory blocking
// flag of open tasks against current inventory: a task is blocked when the
// stage it draws from holds less than its quantity.
//
// The flag gates the UI only. Advancing a task re-checks inventory inside
// its own critical section, so a stale active flag can never cause an
// invalid mutation.
type BlockingEvaluator struct{}

// NewBlockingEvaluator creates a new BlockingEvaluator instance.
func NewBlockingEvaluator() BlockingEvaluator {
	return BlockingEvaluator{}
}

// Evaluate sets each task's status from its input-stage count. A SKU with no
// level yet counts as zero everywhere. Tasks are mutated in place; the
// returned error reports an invalid task or level, in which case evaluation
// stops.
func (e BlockingEvaluator) Evaluate(tasks []*task.Task, levels []*inventory.Level) error {
	levelByCode := make(map[string]*inventory.Level, len(levels))
	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return err
		}
		levelByCode[level.Code().String()] = level
	}

	for _, openTask := range tasks {
		stage, err := openTask.InputStage()
		if err != nil {
			return err
		}

		available := 0
		if level, ok := levelByCode[openTask.Code().String()]; ok {
			if available, err = level.CountAt(stage); err != nil {
				return err
			}
		}

		if available < openTask.Quantity() {
			err = openTask.MarkBlocked()
		} else {
			err = openTask.MarkActive()
		}
		if err != nil {
			return err
		}
	}

	return nil
}
