//go:build blocksdebug

package engine

import "fmt"

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("engine: " + fmt.Sprintf(format, args...))
	}
}
