// Package runner executes registered puzzle entries and renders the report.
//
// Execution walks the registry in key order (ascending day, then part) and
// each bucket in registration order. Every selected entry is timed with the
// configured Clock and produces one Block. A failing or panicking entry is
// rendered inline and never stops the entries after it.
//
// Block rendering:
//
//	Day 2 - part 2: 20x3x11
//	                15x27x5
//	Day 2 - part 2 — no_eol: 20x3x11
//	                         15x27x5 (1.20 ms)
//
// Continuation lines are indented to the display width of the header, so
// the body stays aligned even though "—" is several bytes long.
package runner
