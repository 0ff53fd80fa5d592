package platform

import (
	"os"
	"strings"
)

var unsafeDirChars = []string{":", "*", "?", `"`, "<", ">", "|"}

// SafeDirName turns name into something usable as a directory name (or a
// relative path, with allowSeparators). Backslashes become slashes,
// surrounding whitespace is trimmed and every reserved character becomes
// "-". With allowSeparators, ".." is replaced instead of "/", so the result
// cannot climb out of its parent.
func SafeDirName(name string, allowSeparators bool) string {
	s := strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	for _, c := range unsafeDirChars {
		s = strings.ReplaceAll(s, c, "-")
	}
	if allowSeparators {
		return strings.ReplaceAll(s, "..", "-")
	}
	return strings.ReplaceAll(s, "/", "-")
}

// SafeDirName is the method form of the package function.
func (o *OS) SafeDirName(name string, allowSeparators bool) string {
	return SafeDirName(name, allowSeparators)
}

// EngineDirName is the directory name used for engine data under the
// platform data path.
func (o *OS) EngineDirName() string {
	return o.engineDir
}

func (o *OS) DataPath() string               { return o.backend.DataPath() }
func (o *OS) ConfigPath() string             { return o.backend.ConfigPath() }
func (o *OS) CachePath() string              { return o.backend.CachePath() }
func (o *OS) SystemDir(dir SystemDir) string { return o.backend.SystemDir(dir) }

// ResourceDir is the project's resource path, or "" without a project.
func (o *OS) ResourceDir() string {
	if o.project == nil {
		return ""
	}
	return o.project.ResourcePath()
}

// userDirRequest describes the user data directory for the current project.
func (o *OS) userDirRequest() UserDirRequest {
	req := UserDirRequest{EngineDir: o.engineDir, Fallback: "."}
	if o.project == nil {
		return req
	}
	if res := o.project.ResourcePath(); res != "" {
		req.Fallback = res
	}
	req.App = SafeDirName(o.project.AppName(), false)
	if dir, ok := o.project.CustomUserDir(); ok {
		req.UseCustom = true
		req.CustomDir = SafeDirName(dir, true)
	}
	return req
}

// UserDataDir is the writable per-application directory chosen by the
// back-end.
func (o *OS) UserDataDir() string {
	return o.backend.UserDataDir(o.userDirRequest())
}

// EnsureUserDataDir creates the user data directory if it does not exist.
func (o *OS) EnsureUserDataDir() error {
	dir := o.UserDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WrapError(CodeCantOpen, "ensure_user_data_dir", err)
	}
	return nil
}
