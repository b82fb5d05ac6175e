// Package inventory implements the inventory store of the packaging pipeline:
// per-SKU counters across the three production stages (staged, filled, cased),
// the stage deltas task transitions and container intake express their effects
// in, and the append-only intake audit record.
//
// The package enforces the core invariant of the pipeline (no stage counter
// is ever negative) by funneling every mutation through Level.ApplyDelta or
// Level.SetAbsolute, both of which validate before committing and commit all
// counters together or not at all.
package inventory
