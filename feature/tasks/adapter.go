package tasks

import (
	"fmt"

	"task-sync/core/normalize"
)

// Adapter plugs Task into the generic reconcile engine.
type Adapter struct{}

// NewAdapter creates a task adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name returns the unique name of this adapter.
func (a *Adapter) Name() string {
	return "tasks"
}

// Key returns the task identifier used to match stored rows.
func (a *Adapter) Key(t Task) string {
	return t.ID
}

// CompareFields returns one "column: incoming != existing" entry per field
// whose normalized values differ.
func (a *Adapter) CompareFields(incoming, existing Task) []string {
	var diffs []string
	for _, col := range columns {
		in := normalize.Value(col.value(&incoming))
		ex := normalize.Value(col.value(&existing))
		if !normalize.Equal(in, ex) {
			diffs = append(diffs, fmt.Sprintf("%s: %s != %s", col.Store, render(in), render(ex)))
		}
	}
	return diffs
}

func render(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
