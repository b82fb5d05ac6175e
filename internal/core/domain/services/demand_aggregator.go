package services

import (
	"sort"
	"time"

	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
)

// OpenOrder is the read-only view of one confirmed, undelivered order the
// upstream order service supplies: who it is for, when it is due, and the
// outstanding quantity per SKU. The pipeline never mutates order state.
type OpenOrder struct {
	CustomerName string
	DeliveryDate time.Time
	Lines        []OpenOrderLine
}

// OpenOrderLine is one outstanding order line: a SKU and the quantity still
// to be produced for it.
type OpenOrderLine struct {
	Code     sku.Code
	Quantity int
}

// Contribution is one order's share of a SKU's demand, tagged with the
// priority tier its delivery date puts it in. Contributions feed the backlog
// planner's source attribution.
type Contribution struct {
	CustomerName string
	DeliveryDate time.Time
	Quantity     int
	Tier         task.Tier
}

// DemandEntry is the aggregate outstanding quantity for one SKU, bucketed by
// delivery urgency. Entries are recomputed from open orders on every refresh
// and never persisted.
type DemandEntry struct {
	Code     sku.Code
	Total    int
	Urgent   int
	Tomorrow int

	// Contributions lists the per-order shares behind the totals, sorted
	// by delivery date then customer name.
	Contributions []Contribution
}

// DemandAggregator is a domain service that derives per-SKU demand from open
// orders. It is a pure function of its inputs: no side effects, no clock of
// its own, the reference time is a parameter.
//
// Bucketing rules:
//   - urgent: due today or earlier (calendar days, not 24h windows)
//   - tomorrow: due exactly one calendar day out
//   - everything outstanding counts toward total
//
// Example usage:
//
//	aggregator := services.NewDemandAggregator()
//	entries, err := aggregator.Aggregate(orders, time.Now())
type DemandAggregator struct{}

// NewDemandAggregator creates a new DemandAggregator instance.
func NewDemandAggregator() DemandAggregator {
	return DemandAggregator{}
}

// Aggregate derives one DemandEntry per SKU appearing in the open orders.
// Output is sorted by SKU code ascending; contributions within an entry are
// sorted by delivery date then customer name. Lines with non-positive
// quantity are rejected rather than skipped.
func (a DemandAggregator) Aggregate(orders []OpenOrder, now time.Time) ([]DemandEntry, error) {
	today := startOfDay(now)
	entries := make(map[string]*DemandEntry)

	for _, order := range orders {
		tier := tierForDate(order.DeliveryDate, today)

		for _, line := range order.Lines {
			if err := line.Code.Validate(); err != nil {
				return nil, err
			}
			if line.Quantity <= 0 {
				return nil, errs.NewValueIsOutOfRangeError("order line quantity", line.Quantity, 1, maxOrderLineQuantity)
			}

			entry, ok := entries[line.Code.String()]
			if !ok {
				entry = &DemandEntry{Code: line.Code}
				entries[line.Code.String()] = entry
			}

			entry.Total += line.Quantity
			switch tier {
			case task.TierUrgent:
				entry.Urgent += line.Quantity
			case task.TierTomorrow:
				entry.Tomorrow += line.Quantity
			}

			entry.Contributions = append(entry.Contributions, Contribution{
				CustomerName: order.CustomerName,
				DeliveryDate: order.DeliveryDate,
				Quantity:     line.Quantity,
				Tier:         tier,
			})
		}
	}

	result := make([]DemandEntry, 0, len(entries))
	for _, entry := range entries {
		sort.SliceStable(entry.Contributions, func(i, j int) bool {
			left, right := entry.Contributions[i], entry.Contributions[j]
			if !left.DeliveryDate.Equal(right.DeliveryDate) {
				return left.DeliveryDate.Before(right.DeliveryDate)
			}
			return left.CustomerName < right.CustomerName
		})
		result = append(result, *entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Code.Less(result[j].Code)
	})

	return result, nil
}

// maxOrderLineQuantity bounds a single order line to a sane upper limit.
const maxOrderLineQuantity = 1_000_000

// tierForDate buckets a delivery date against the reference day.
func tierForDate(deliveryDate time.Time, today time.Time) task.Tier {
	day := startOfDay(deliveryDate)
	switch {
	case !day.After(today):
		return task.TierUrgent
	case day.Equal(today.AddDate(0, 0, 1)):
		return task.TierTomorrow
	default:
		return task.TierUpcoming
	}
}

// startOfDay truncates a time to midnight in its own location. Urgency is a
// calendar-day question, not a 24-hour-window one.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
