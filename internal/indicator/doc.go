// Package indicator implements the live terminal progress animation shown
// while a blocking operation is in flight. One goroutine repaints a saved
// screen region at a fixed interval; Stop cancels it, joins it, and resets
// the region, so handler output never races a trailing animation frame.
package indicator
