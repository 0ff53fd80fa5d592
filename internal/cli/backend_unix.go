//go:build linux || freebsd || openbsd || netbsd || dragonfly

package cli

import (
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/platform/linuxbsd"
)

func defaultBackend() (platform.Backend, error) {
	return linuxbsd.New(), nil
}
