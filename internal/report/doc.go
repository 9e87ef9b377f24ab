// Package report renders run results for humans and machines. It offers a
// terminal text view, a summary table, Markdown for sharing, JSON for tool
// integration, and a CSV export that echoes the input columns with the
// generated script columns appended.
package report
