// Package tasks reconciles planner task exports with the task table.
//
// A workbook is parsed by core/sheet, every row is turned into a Task by
// FromRow, and the generic engine in core/reconcile decides which tasks are
// new and which changed. Service.Sync writes the result through a Store;
// Service.Plan and Service.Preview stop before writing.
//
// The package also serves the task listing and summary used by the dashboard
// and, when storage is enabled, archives every uploaded workbook.
//
// # Routes
//
//	POST /api/v1/procesar-excel   multipart "file", optional ?dry_run=true
//	GET  /api/v1/tareas           search, progreso, asignado_a, completado_por, desde, hasta
//	GET  /api/v1/tareas/resumen
package tasks
