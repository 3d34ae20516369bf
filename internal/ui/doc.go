// Package ui renders terminal output for the geoloc CLI: a live Bubble Tea
// progress view driven by the request state machine, and styled result and
// failure boxes for one-shot lookups.
//
// The watch view polls the client's cooperative Process step on a timer and
// maps the advisory progress percentage onto a bubbles progress bar, so the
// UI reflects exactly the state transitions the library reports.
package ui
