// Package sheet reads xlsx workbooks into header-keyed rows.
//
// It is the Record Parser of the sync pipeline: it selects a named worksheet,
// trims every header, decodes cells into typed values (bool, time.Time, text),
// drops rows whose key cell is blank and validates that every required header
// is present. All failures are apperr.KindMalformedInput errors.
//
// # Usage
//
//	rd := sheet.NewReader(sheet.Options{
//	    Sheet:     "Tareas",
//	    KeyColumn: "Id. de tarea",
//	    Required:  tasks.RequiredColumns(),
//	}, logger)
//	table, err := rd.Read(file)
package sheet
