// Package readability extracts the main article content and metadata from an
// HTML document, following the scoring and candidate-selection approach
// popularized by Mozilla's Readability.js.
//
// A Readability value is single-use: construct one with New, call Parse (or
// ParseBytes) exactly once, and read the returned Result.
package readability
