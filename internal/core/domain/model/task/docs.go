// Package task contains the scheduled-work aggregate of the packaging
// pipeline: the Task aggregate root moving through the kanban columns
// (TO_FILL, TO_CASE, DONE), the immutable CompletedTask record a finished
// task converts into, and the value objects describing a task's priority
// tier, advisory blocking status, and contributing sources.
//
// Transitions are expressed as inventory stage deltas: a task derives the
// delta its advance or revert implies from its column and quantity, and the
// application layer applies that delta to the SKU's inventory level in the
// same unit of work. The aggregate never reads or writes inventory itself.
package task
