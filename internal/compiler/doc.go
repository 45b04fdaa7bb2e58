// Package compiler runs one Varphi program through the front-end and feeds
// every accepted transition to a Backend.
//
// A run is: fresh session and backend.Reset, scan and parse the whole file,
// validate each line in source order, hand it to Backend.OnTransition, then
// Backend.Finalize. The first problem aborts the run; no transition after it
// reaches the backend.
package compiler
