// Package dataprocessing implements the sales analysis pipeline: decoding an
// uploaded Excel workbook into a raw table, validating its schema into typed
// rows, filtering by month, and aggregating the result into chart-ready data.
//
// Each stage consumes the previous stage's validated output and returns either
// a value or an error that short-circuits the remaining stages. Tables are
// never mutated in place; filtering produces a new table.
package dataprocessing
