// Package viz renders CoP results for the terminal: a styled breakdown
// report and ascii charts of custom fairing profiles. The engine itself
// never prints; everything here consumes finished results.
package viz
