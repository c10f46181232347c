package tasks

import (
	"task-sync/core/apperr"
	"task-sync/core/normalize"
	"task-sync/core/sheet"
	"task-sync/core/utils"
)

// FromRow builds a Task from one parsed sheet row.
//
// Every cell goes through normalize.Value. Missing headers leave the field nil
// and a missing identifier yields an empty ID. Flags and checklist counts that
// cannot be coerced fail with a validation error naming the column.
func FromRow(row sheet.Row) (*Task, error) {
	t := &Task{}
	for _, col := range columns {
		v := normalize.Value(row[col.Header])

		switch dst := col.field(t).(type) {
		case *string:
			if v != nil {
				*dst = utils.ToString(v)
			}
		case **string:
			if v != nil {
				s := utils.ToString(v)
				*dst = &s
			}
		case **bool:
			if v == nil {
				continue
			}
			b, ok := utils.ParseBool(v)
			if !ok {
				return nil, apperr.Validation("task %s: column %q expects a yes/no value, got %q", t.ID, col.Header, utils.ToString(v))
			}
			*dst = &b
		case **int:
			if v == nil {
				continue
			}
			n, ok := utils.ParseInt(v)
			if !ok {
				return nil, apperr.Validation("task %s: column %q expects a whole number, got %q", t.ID, col.Header, utils.ToString(v))
			}
			*dst = &n
		}
	}
	return t, nil
}
