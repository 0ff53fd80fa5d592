package feature

import "runtime/debug"

var archTokens = armTokens()

// armTokens reports the arm sub-variant the binary was compiled for. The
// GOARM level is recorded in the build settings at link time.
func armTokens() []string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "GOARM" && len(s.Value) > 0 && s.Value[0] == '7' {
				return []string{"armv7a", "armv7", "arm"}
			}
		}
	}
	return []string{"arm"}
}
