//go:build !blocksdebug

package engine

// assertf checks internal invariants in builds tagged blocksdebug only.
func assertf(bool, string, ...any) {}
