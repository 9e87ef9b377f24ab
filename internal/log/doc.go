// Package log provides logging with automatic masking of lead contact
// details, built on top of the standard slog package.
//
// Lead files carry personally identifiable information: names are needed
// in logs to make rows traceable, but email addresses, LinkedIn profile
// URLs, and phone numbers are not. The MaskHandler redacts those before
// the record reaches the underlying handler, so verbose runs can be
// shared or attached to bug reports without leaking a prospect list.
//
// # Usage
//
//	// Create a masking logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("lead loaded",
//	    "company", "Zylo",
//	    "email", "ana@zylo.com", // masked in output
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
