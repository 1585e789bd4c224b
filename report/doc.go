// Package report renders run results as human-readable text.
//
// Each report carries a unique run ID so log lines emitted during the
// run can be correlated with the printed summary.
package report
