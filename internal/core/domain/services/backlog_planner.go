package services

import (
	"fmt"
	"sort"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
)

// BacklogPlanner is the task generator: a domain service that reconciles
// demand against current inventory and the existing open backlog, and
// produces the new tasks needed to close the uncovered remainder.
//
// Planning rules per SKU:
//   - gap = max(0, demand total − cased stock)
//   - quantity already represented by open tasks (both columns) is never
//     generated twice
//   - existing coverage (cased stock plus open tasks) is attributed to the
//     most urgent demand first
//   - the uncovered remainder becomes at most one task per priority tier,
//     with sources recording which order quantities contributed
//   - a task starts in ToCase when un-reserved filled stock covers its
//     quantity, otherwise in ToFill
//   - after demand is covered, remaining free staged or filled stock is
//     advanced as a single backfill task, building toward demand total
//     plus a configured buffer of cased coverage
//
// Output is deterministic: SKU code ascending, tiers in priority order
// within a SKU. The planner creates tasks; it never mutates existing ones
// and never touches inventory.
type BacklogPlanner struct {
	buffer int
}

// NewBacklogPlanner creates a planner with the given backfill buffer: how
// many units of cased coverage beyond demand to keep building per SKU.
// A zero buffer disables backfill beyond covering demand with surplus.
func NewBacklogPlanner(buffer int) (BacklogPlanner, error) {
	if buffer < 0 {
		return BacklogPlanner{}, errs.NewValueIsInvalidErrorWithCause(
			"backfill buffer",
			fmt.Errorf("%d is negative", buffer),
		)
	}
	return BacklogPlanner{buffer: buffer}, nil
}

// Plan produces the new tasks the backlog is missing. It reads demand
// entries, current inventory levels, and the open (not done) tasks, and
// returns tasks to be inserted. The now parameter stamps creation time and
// fixes the stable within-tier ordering.
func (p BacklogPlanner) Plan(
	demand []DemandEntry,
	levels []*inventory.Level,
	open []*task.Task,
	now time.Time,
) ([]*task.Task, error) {
	levelByCode := make(map[string]*inventory.Level, len(levels))
	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return nil, err
		}
		levelByCode[level.Code().String()] = level
	}

	demandByCode := make(map[string]DemandEntry, len(demand))
	for _, entry := range demand {
		demandByCode[entry.Code.String()] = entry
	}

	openTotal := make(map[string]int)
	reservedStaged := make(map[string]int)
	reservedFilled := make(map[string]int)
	for _, openTask := range open {
		if err := openTask.Validate(); err != nil {
			return nil, err
		}

		code := openTask.Code().String()
		openTotal[code] += openTask.Quantity()
		switch openTask.Column() {
		case task.ColumnToFill:
			reservedStaged[code] += openTask.Quantity()
		case task.ColumnToCase:
			reservedFilled[code] += openTask.Quantity()
		}
	}

	var planned []*task.Task
	for _, code := range p.skuUniverse(demand, levels) {
		tasks, err := p.planSKU(code, demandByCode, levelByCode, openTotal, reservedStaged, reservedFilled, now)
		if err != nil {
			return nil, err
		}
		planned = append(planned, tasks...)
	}

	return planned, nil
}

// skuUniverse returns every SKU with demand or stock, code ascending.
func (p BacklogPlanner) skuUniverse(demand []DemandEntry, levels []*inventory.Level) []sku.Code {
	seen := make(map[string]sku.Code)
	for _, entry := range demand {
		seen[entry.Code.String()] = entry.Code
	}
	for _, level := range levels {
		seen[level.Code().String()] = level.Code()
	}

	codes := make([]sku.Code, 0, len(seen))
	for _, code := range seen {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].Less(codes[j])
	})
	return codes
}

func (p BacklogPlanner) planSKU(
	code sku.Code,
	demandByCode map[string]DemandEntry,
	levelByCode map[string]*inventory.Level,
	openTotal map[string]int,
	reservedStaged map[string]int,
	reservedFilled map[string]int,
	now time.Time,
) ([]*task.Task, error) {
	key := code.String()
	entry := demandByCode[key]

	var staged, filled, cased int
	if level, ok := levelByCode[key]; ok {
		staged, filled, cased = level.Staged(), level.Filled(), level.Cased()
	}

	// Stock not yet reserved by the open backlog is what new tasks can
	// draw from when choosing their starting column.
	freeStaged := max(0, staged-reservedStaged[key])
	freeFilled := max(0, filled-reservedFilled[key])

	// Cased stock and the quantity of all open tasks already work toward
	// this SKU's demand; only the remainder needs new tasks.
	coverage := cased + openTotal[key]

	var planned []*task.Task
	plannedTotal := 0

	remaining := coverage
	for _, tier := range []task.Tier{task.TierUrgent, task.TierTomorrow, task.TierUpcoming} {
		sources, quantity, err := uncoveredSources(entry, tier, &remaining)
		if err != nil {
			return nil, err
		}
		if quantity == 0 {
			continue
		}

		column := task.ColumnToFill
		if freeFilled >= quantity {
			column = task.ColumnToCase
			freeFilled -= quantity
		} else {
			freeStaged = max(0, freeStaged-quantity)
		}

		newTask, err := task.NewTask(kernel.NewUUID(), code, quantity, column, tier, sources, now)
		if err != nil {
			return nil, err
		}
		planned = append(planned, newTask)
		plannedTotal += quantity
	}

	backfill, err := p.planBackfill(code, entry, freeStaged, freeFilled, coverage+plannedTotal, now)
	if err != nil {
		return nil, err
	}
	if backfill != nil {
		planned = append(planned, backfill)
	}

	return planned, nil
}

// uncoveredSources walks the entry's contributions for one tier in delivery
// date then customer order, consumes the shared coverage remainder, and
// returns sources for the quantities left uncovered.
func uncoveredSources(entry DemandEntry, tier task.Tier, remaining *int) ([]task.Source, int, error) {
	var sources []task.Source
	quantity := 0

	for _, contribution := range entry.Contributions {
		if contribution.Tier != tier {
			continue
		}

		covered := min(contribution.Quantity, *remaining)
		*remaining -= covered

		uncovered := contribution.Quantity - covered
		if uncovered == 0 {
			continue
		}

		source, err := task.NewOrderSource(uncovered, contribution.CustomerName)
		if err != nil {
			return nil, 0, err
		}
		sources = append(sources, source)
		quantity += uncovered
	}

	return sources, quantity, nil
}

// planBackfill advances surplus stock once demand is covered, building
// toward projected cased coverage of demand total plus the buffer.
func (p BacklogPlanner) planBackfill(
	code sku.Code,
	entry DemandEntry,
	freeStaged int,
	freeFilled int,
	projected int,
	now time.Time,
) (*task.Task, error) {
	shortfall := entry.Total + p.buffer - projected
	quantity := min(shortfall, freeStaged+freeFilled)
	if quantity <= 0 {
		return nil, nil
	}

	column := task.ColumnToFill
	if freeFilled >= quantity {
		column = task.ColumnToCase
	}

	source, err := task.NewBackfillSource(quantity)
	if err != nil {
		return nil, err
	}

	return task.NewTask(kernel.NewUUID(), code, quantity, column, task.TierBackfill, []task.Source{source}, now)
}
