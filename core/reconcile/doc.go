// Package reconcile provides a generic engine for converging a store with an
// incoming set of records keyed by identity.
//
// # Architecture
//
// The reconcile system consists of two parts:
//
// 1. Engine: BuildPlan indexes the existing records by key and classifies every
// incoming record as insert, update or unchanged. ApplyPlan executes the plan
// through a Mutator: one batch insert, then one update per changed record.
//
// 2. Adapter: model-specific logic that extracts the key of a record and
// compares the fields of two records. See feature/tasks for the task adapter.
//
// # Edge cases
//
//   - Duplicate keys among existing records: the last one wins; the number of
//     shadowed records is reported in PlanSummary.DuplicateExisting.
//   - Incoming records without a key cannot be matched; they are counted in
//     PlanSummary.Skipped and never inserted.
//   - Duplicate keys among incoming records are not collapsed.
//
// # Usage Example
//
//	plan := reconcile.BuildPlan[tasks.Task](adapter, incoming, existing)
//	if plan.HasChanges() {
//	    executed, err := reconcile.ApplyPlan(ctx, adapter, store, plan, reconcile.ApplyOptions{})
//	}
package reconcile
