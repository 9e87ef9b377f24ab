// Package main provides the entry point for the leadscript CLI.
//
// leadscript turns a CSV of sales leads into personalized outreach
// scripts: an email subject and body plus a LinkedIn connection message
// for every lead, prioritized by seniority and segmented by company type.
//
// Usage:
//
//	leadscript generate leads.csv
//	leadscript generate --csv -o scripts.csv leads.csv
//
// See --help for all available options.
package main

// main is the entry point for leadscript.
func main() {
	Execute()
}
