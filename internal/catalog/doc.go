// Package catalog defines the remote-catalog boundary: a single-method
// Source contract for listing installable JVM versions, plus the Adoptium
// HTTP implementation. The dispatch core only sees the interface, so tests
// substitute stubs freely.
package catalog
