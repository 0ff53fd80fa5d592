//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"path/filepath"
	"strings"

	"github.com/roach88/engineos/internal/platform"
)

// xdgDir resolves an XDG base directory: $env when it is absolute, else
// $HOME/fallback, else ".".
func (b *Backend) xdgDir(env, fallback string) string {
	if dir := b.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	if home := b.Getenv("HOME"); home != "" {
		return filepath.Join(home, fallback)
	}
	return "."
}

func (b *Backend) DataPath() string   { return b.xdgDir("XDG_DATA_HOME", ".local/share") }
func (b *Backend) ConfigPath() string { return b.xdgDir("XDG_CONFIG_HOME", ".config") }
func (b *Backend) CachePath() string  { return b.xdgDir("XDG_CACHE_HOME", ".cache") }

// UserDataDir places per-application data under the data path:
// <data>/<engine>/app_userdata/<app>, or <data>/<custom> when the project
// asked for a custom directory. Unnamed projects use req.Fallback.
func (b *Backend) UserDataDir(req platform.UserDirRequest) string {
	if req.App == "" {
		return req.Fallback
	}
	if req.UseCustom {
		custom := req.CustomDir
		if custom == "" {
			custom = req.App
		}
		return filepath.Join(b.DataPath(), custom)
	}
	return filepath.Join(b.DataPath(), req.EngineDir, "app_userdata", req.App)
}

var xdgUserDirNames = map[platform.SystemDir]string{
	platform.SystemDirDesktop:   "DESKTOP",
	platform.SystemDirDCIM:      "PICTURES",
	platform.SystemDirDocuments: "DOCUMENTS",
	platform.SystemDirDownloads: "DOWNLOAD",
	platform.SystemDirMovies:    "VIDEOS",
	platform.SystemDirMusic:     "MUSIC",
	platform.SystemDirPictures:  "PICTURES",
	platform.SystemDirRingtones: "MUSIC",
}

// SystemDir asks xdg-user-dir for the directory. Without an answer it
// falls back to $HOME.
func (b *Backend) SystemDir(dir platform.SystemDir) string {
	name, ok := xdgUserDirNames[dir]
	if ok {
		res, err := b.run("xdg-user-dir", []string{name}, true)
		if err == nil && res.ExitCode == 0 {
			if out := strings.TrimSpace(res.Output); out != "" {
				return out
			}
		}
	}
	if home := b.Getenv("HOME"); home != "" {
		return home
	}
	return "."
}
