package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsert creates a record that has no stored counterpart.
	ActionInsert ActionType = "insert"
	// ActionUpdate overwrites a stored record whose fields differ.
	ActionUpdate ActionType = "update"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the record identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan holds the records to write and the reasons for writing them.
type Plan[T any] struct {
	// Inserts contains incoming records without a stored counterpart, in input order.
	Inserts []T `json:"-"`

	// Updates contains incoming records that differ from their stored counterpart, in input order.
	Updates []T `json:"-"`

	// Mismatches holds the field differences of every updated record, keyed by record key.
	Mismatches map[string][]string `json:"mismatches"`

	// Actions lists every planned mutation, inserts first.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Incoming is the number of records offered for reconciliation.
	Incoming int `json:"incoming"`

	// Existing is the number of stored records considered.
	Existing int `json:"existing"`

	// Inserts counts records planned for insertion.
	Inserts int `json:"inserts"`

	// Updates counts records planned for update.
	Updates int `json:"updates"`

	// Unchanged counts matched records with no field difference.
	Unchanged int `json:"unchanged"`

	// Skipped counts incoming records without a key.
	Skipped int `json:"skipped"`

	// DuplicateExisting counts stored records shadowed by a later record with the same key.
	DuplicateExisting int `json:"duplicate_existing"`
}

// ApplyOptions controls whether a plan is executed.
type ApplyOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool
}

// HasChanges reports whether the plan contains any mutation.
func (p *Plan[T]) HasChanges() bool {
	return len(p.Inserts) > 0 || len(p.Updates) > 0
}
