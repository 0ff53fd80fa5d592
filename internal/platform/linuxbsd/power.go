//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"io/fs"
	"path"
	"strconv"

	"github.com/roach88/engineos/internal/platform"
)

const powerSupplyDir = "class/power_supply"

type battery struct {
	status  string
	percent int
	seconds int
}

// battery reads the first battery under class/power_supply.
func (b *Backend) battery() (battery, bool) {
	entries, err := fs.ReadDir(b.sysfs, powerSupplyDir)
	if err != nil {
		return battery{}, false
	}
	for _, e := range entries {
		dir := path.Join(powerSupplyDir, e.Name())
		if readTrimmed(b.sysfs, path.Join(dir, "type")) != "Battery" {
			continue
		}
		bat := battery{
			status:  readTrimmed(b.sysfs, path.Join(dir, "status")),
			percent: -1,
			seconds: -1,
		}
		if n, ok := readInt(b.sysfs, path.Join(dir, "capacity")); ok {
			bat.percent = n
		}
		if bat.status == "Discharging" {
			bat.seconds = remaining(b.sysfs, dir)
		}
		return bat, true
	}
	return battery{}, false
}

// remaining estimates seconds of battery left from energy/power or
// charge/current.
func remaining(fsys fs.FS, dir string) int {
	pairs := [][2]string{{"energy_now", "power_now"}, {"charge_now", "current_now"}}
	for _, p := range pairs {
		left, ok1 := readInt(fsys, path.Join(dir, p[0]))
		rate, ok2 := readInt(fsys, path.Join(dir, p[1]))
		if ok1 && ok2 && rate > 0 {
			return left * 3600 / rate
		}
	}
	return -1
}

func readInt(fsys fs.FS, name string) (int, bool) {
	n, err := strconv.Atoi(readTrimmed(fsys, name))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (b *Backend) PowerState() platform.PowerState {
	if _, err := fs.Stat(b.sysfs, powerSupplyDir); err != nil {
		return platform.PowerStateUnknown
	}
	bat, ok := b.battery()
	if !ok {
		return platform.PowerStateNoBattery
	}
	switch bat.status {
	case "Discharging":
		return platform.PowerStateOnBattery
	case "Charging":
		return platform.PowerStateCharging
	case "Full":
		return platform.PowerStateCharged
	default:
		return platform.PowerStateUnknown
	}
}

func (b *Backend) PowerSecondsLeft() int {
	bat, ok := b.battery()
	if !ok {
		return -1
	}
	return bat.seconds
}

func (b *Backend) PowerPercentLeft() int {
	bat, ok := b.battery()
	if !ok {
		return -1
	}
	return bat.percent
}
