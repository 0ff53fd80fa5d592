//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"log/slog"

	"github.com/roach88/engineos/internal/platform"
)

// helper is an external program and how to build its arguments.
type helper struct {
	name string
	args func(a, b string) []string
}

var alertHelpers = []helper{
	{"zenity", func(text, title string) []string {
		return []string{"--error", "--width", "500", "--title", title, "--text", text}
	}},
	{"kdialog", func(text, title string) []string {
		return []string{"--title", title, "--error", text}
	}},
	{"xmessage", func(text, title string) []string {
		return []string{"-center", "-title", title, text}
	}},
}

var trashHelpers = []helper{
	{"gio", func(path, _ string) []string { return []string{"trash", path} }},
	{"gvfs-trash", func(path, _ string) []string { return []string{path} }},
	{"kioclient5", func(path, _ string) []string { return []string{"move", path, "trash:/"} }},
	{"trash-put", func(path, _ string) []string { return []string{path} }},
}

// firstHelper returns the first helper found on PATH.
func (b *Backend) firstHelper(helpers []helper) (helper, string, bool) {
	for _, h := range helpers {
		if p, err := b.lookPath(h.name); err == nil {
			return h, p, true
		}
	}
	return helper{}, "", false
}

// Alert shows a blocking error dialog through the first available desktop
// helper, or writes to stderr when there is none.
func (b *Backend) Alert(text, title string) {
	if h, path, ok := b.firstHelper(alertHelpers); ok {
		if _, err := b.run(path, h.args(text, title), true); err == nil {
			return
		}
		slog.Debug("alert helper failed", "helper", h.name)
	}
	b.Defaults.Alert(text, title)
}

// ShellOpen hands uri to xdg-open.
func (b *Backend) ShellOpen(uri string) error {
	path, err := b.lookPath("xdg-open")
	if err != nil {
		return platform.WrapError(platform.CodeUnavailable, "shell_open", err)
	}
	if _, err := b.run(path, []string{uri}, false); err != nil {
		return platform.WrapError(platform.CodeFailed, "shell_open", err)
	}
	return nil
}

// MoveToTrash moves path to the desktop trash with the first available
// helper.
func (b *Backend) MoveToTrash(path string) error {
	const op = "move_to_trash"
	h, bin, ok := b.firstHelper(trashHelpers)
	if !ok {
		return platform.NewError(platform.CodeFailed, op, "no trash helper found")
	}
	res, err := b.run(bin, h.args(path, ""), true)
	if err != nil {
		return platform.WrapError(platform.CodeFailed, op, err)
	}
	if res.ExitCode != 0 {
		return platform.NewError(platform.CodeFailed, op, h.name+" failed for "+path)
	}
	return nil
}
