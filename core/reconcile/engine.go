package reconcile

import (
	"context"
	"fmt"
	"strings"
)

// BuildPlan partitions incoming records into inserts and updates against the
// existing records. It is pure: nothing is read or written.
//
// Existing records are indexed by key; when two share a key the later one
// wins. Incoming records are visited in order, so both output lists keep the
// input order.
func BuildPlan[T any](adapter Adapter[T], incoming, existing []T) *Plan[T] {
	index, duplicates := buildIndex(adapter, existing)

	plan := &Plan[T]{
		Mismatches: make(map[string][]string),
		Summary: PlanSummary{
			Incoming:          len(incoming),
			Existing:          len(existing),
			DuplicateExisting: duplicates,
		},
	}

	var updateActions []Action
	for _, item := range incoming {
		key := adapter.Key(item)
		if key == "" {
			plan.Summary.Skipped++
			continue
		}

		stored, found := index[key]
		if !found {
			plan.Inserts = append(plan.Inserts, item)
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionInsert,
				Key:    key,
				Reason: "missing in store",
			})
			continue
		}

		diffs := adapter.CompareFields(item, stored)
		if len(diffs) == 0 {
			plan.Summary.Unchanged++
			continue
		}

		plan.Updates = append(plan.Updates, item)
		plan.Mismatches[key] = diffs
		updateActions = append(updateActions, Action{
			Type:   ActionUpdate,
			Key:    key,
			Reason: fmt.Sprintf("mismatch: %s", strings.Join(diffs, "; ")),
		})
	}

	plan.Actions = append(plan.Actions, updateActions...)
	plan.Summary.Inserts = len(plan.Inserts)
	plan.Summary.Updates = len(plan.Updates)

	return plan
}

// buildIndex maps key -> record (last one wins) and counts shadowed duplicates.
// Records without a key are never indexed.
func buildIndex[T any](adapter Adapter[T], items []T) (map[string]T, int) {
	index := make(map[string]T, len(items))
	duplicates := 0
	for _, item := range items {
		key := adapter.Key(item)
		if key == "" {
			continue
		}
		if _, exists := index[key]; exists {
			duplicates++
		}
		index[key] = item
	}
	return index, duplicates
}

// ApplyPlan executes the plan against the mutator: one batch insert, then one
// update per record in plan order. It stops at the first failure and returns
// the number of records written so far. Nothing is retried.
func ApplyPlan[T any](ctx context.Context, adapter Adapter[T], mutator Mutator[T], plan *Plan[T], opts ApplyOptions) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	if len(plan.Inserts) > 0 {
		if err := mutator.InsertMany(ctx, plan.Inserts); err != nil {
			return executed, fmt.Errorf("failed to insert %d %s: %w", len(plan.Inserts), adapter.Name(), err)
		}
		executed += len(plan.Inserts)
	}

	for _, item := range plan.Updates {
		if err := mutator.UpdateOne(ctx, item); err != nil {
			return executed, fmt.Errorf("failed to update %s key %s: %w", adapter.Name(), adapter.Key(item), err)
		}
		executed++
	}

	return executed, nil
}
