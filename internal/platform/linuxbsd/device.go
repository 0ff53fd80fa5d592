//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"io/fs"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/text/language"

	"github.com/roach88/engineos/internal/platform"
)

// UniqueID is the host ID (machine-id or the board UUID).
func (b *Backend) UniqueID() (string, error) {
	id, err := host.HostID()
	if err != nil || id == "" {
		return "", platform.WrapError(platform.CodeUnavailable, "unique_id", err)
	}
	return id, nil
}

// ProcessorCount is the number of logical CPUs.
func (b *Backend) ProcessorCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// FreeMemory is the memory available to new allocations, in bytes.
func (b *Backend) FreeMemory() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Available
}

// ModelName is the DMI product name when the firmware exposes one.
func (b *Backend) ModelName() string {
	if name := readTrimmed(b.sysfs, "devices/virtual/dmi/id/product_name"); name != "" {
		return name
	}
	return b.Defaults.ModelName()
}

// Locale derives the user's locale from LC_ALL, LC_MESSAGES or LANG and
// reports it as language[_REGION], e.g. "de_DE" or "pt". The C and POSIX
// locales read as "en".
func (b *Backend) Locale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := b.Getenv(env); v != "" {
			return canonicalLocale(v)
		}
	}
	return "en"
}

func canonicalLocale(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "en"
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.Exact {
		return base.String() + "_" + region.String()
	}
	return base.String()
}

func readTrimmed(fsys fs.FS, name string) string {
	if fsys == nil {
		return ""
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
