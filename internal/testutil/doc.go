// Package testutil holds fakes shared by the package tests: a manual tick
// clock, an in-memory platform back-end, a recording log sink and a
// static instance ID generator, plus the golden-file assertion.
package testutil
