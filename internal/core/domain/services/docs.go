// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the packaging pipeline. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DemandAggregator: derives per-SKU demand buckets from open orders
//   - BacklogPlanner: reconciles demand, inventory, and the open backlog
//     into new prioritized tasks
//   - BlockingEvaluator: refreshes the advisory blocked flag of open tasks
//     against current inventory
//
// All three services are pure coordinators: they take their inputs as
// parameters, never load or persist state, and never own a clock.
package services
