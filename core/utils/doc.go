// Package utils provides common utility functions for the task-sync application.
// It includes strict type conversions used when coercing spreadsheet cells and
// the JSON sanitizer applied to every response payload.
package utils
