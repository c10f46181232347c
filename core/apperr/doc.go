// Package apperr defines the error taxonomy shared by every layer of the sync service.
//
// # Kinds
//
//   - KindMalformedInput: the workbook is unreadable, has the wrong schema, or has no usable rows.
//   - KindValidation: a row could not be turned into a valid task record.
//   - KindStore: the record store failed a read or a write.
//   - KindInternal: anything else.
//
// Components fail fast with the most specific kind. Wrap never re-tags an error
// that already carries a kind, so the orchestrator can wrap blindly.
//
// # Usage
//
//	if err := store.InsertMany(ctx, tasks); err != nil {
//	    return apperr.Wrap(apperr.KindStore, err, "insert tasks")
//	}
//
//	status := apperr.HTTPStatus(apperr.KindOf(err))
package apperr
