//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package cli

import (
	"runtime"

	"github.com/roach88/engineos/internal/platform"
)

func defaultBackend() (platform.Backend, error) {
	return nil, platform.NewError(platform.CodeUnavailable, "backend", "no platform back-end for "+runtime.GOOS)
}
