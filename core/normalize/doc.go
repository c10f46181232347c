// Package normalize canonicalizes scalar cell and column values so that a task
// read from a workbook and the same task read back from the store compare equal.
//
// Blank-like inputs (nil, NaN, empty or "nan" strings, the Missing sentinel)
// collapse to nil. Dates in any supported spelling collapse to YYYY-MM-DD.
// Every other value passes through untouched.
package normalize
