// Package utils holds small internal helpers shared across the module:
// a generic JSON-over-HTTP POST, string truncation for log previews, and a
// pointer constructor.
package utils
