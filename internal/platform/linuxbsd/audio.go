//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"errors"
	"log/slog"

	"github.com/roach88/engineos/internal/platform"
)

// audioDrivers are the drivers compiled into this back-end, in preference
// order.
var audioDrivers = []string{"PulseAudio", "ALSA"}

// AudioInitializer starts and stops an audio driver by name.
type AudioInitializer interface {
	Init(driver string) error
	Finish()
}

func (b *Backend) AudioDriverCount() int { return len(audioDrivers) }

func (b *Backend) AudioDriverName(driver int) string {
	if driver < 0 || driver >= len(audioDrivers) {
		return ""
	}
	return audioDrivers[driver]
}

// initAudio tries the requested driver, then every other driver in order.
// It returns the index of the driver that started.
func initAudio(a AudioInitializer, requested int) (int, error) {
	if requested < 0 || requested >= len(audioDrivers) {
		requested = 0
	}
	order := []int{requested}
	for i := range audioDrivers {
		if i != requested {
			order = append(order, i)
		}
	}

	var errs []error
	for _, i := range order {
		err := a.Init(audioDrivers[i])
		if err == nil {
			return i, nil
		}
		slog.Debug("audio driver failed", "driver", audioDrivers[i], "error", err)
		errs = append(errs, err)
	}
	return -1, platform.WrapError(platform.CodeFailed, "initialize_audio", errors.Join(errs...))
}
