package reconcile

import "context"

// Adapter defines the model-specific part of a reconciliation.
// Each adapter knows how to key a record and how to compare two records of
// its model (e.g., tasks).
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "tasks").
	Name() string

	// Key returns the identity of a record. An empty key means the record
	// cannot be matched and is skipped by the planner.
	Key(item T) string

	// CompareFields compares an incoming record with its existing counterpart
	// and returns a description per differing field (e.g., "progreso: En curso != Completado").
	// An empty result means the records are equal.
	CompareFields(incoming, existing T) []string
}

// Mutator applies planned actions to the store that holds existing records.
type Mutator[T any] interface {
	// InsertMany inserts every new record in a single batch call.
	InsertMany(ctx context.Context, items []T) error

	// UpdateOne overwrites the stored record that shares the item's key.
	UpdateOne(ctx context.Context, item T) error
}
