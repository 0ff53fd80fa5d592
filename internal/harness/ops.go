package harness

import (
	"context"
	"fmt"
	"sort"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/host"
	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/platform"
)

// opFunc executes one step against a running host.
type opFunc func(r *runner, args map[string]any) (any, error)

// ops is the operation vocabulary available to scenario steps.
var ops = map[string]opFunc{
	"print": func(r *runner, a map[string]any) (any, error) {
		r.host.OS.Print("%s", argString(a, "text"))
		return nil, nil
	},
	"printerr": func(r *runner, a map[string]any) (any, error) {
		r.host.OS.Printerr("%s", argString(a, "text"))
		return nil, nil
	},
	"report_error": func(r *runner, a map[string]any) (any, error) {
		typ, err := parseErrorType(argString(a, "type"))
		if err != nil {
			return nil, err
		}
		r.host.OS.PrintError(logger.ErrorReport{
			Function:  argString(a, "function"),
			File:      argString(a, "file"),
			Line:      argInt(a, "line"),
			Code:      argString(a, "code"),
			Rationale: argString(a, "rationale"),
			Type:      typ,
		})
		return nil, nil
	},
	"has_feature": func(r *runner, a map[string]any) (any, error) {
		return r.host.OS.HasFeature(argString(a, "name")), nil
	},
	"resolve_feature": func(r *runner, a map[string]any) (any, error) {
		tier, _ := r.host.OS.Features().Resolve(argString(a, "name"))
		return tier.String(), nil
	},
	"set_window_size": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.SetWindowSize(display.Size{Width: argInt(a, "width"), Height: argInt(a, "height")})
		return nil, nil
	},
	"set_window_position": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.SetWindowPosition(display.Point{X: argInt(a, "x"), Y: argInt(a, "y")})
		return nil, nil
	},
	"set_fullscreen": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.SetWindowFullscreen(argBool(a, "enabled"))
		return nil, nil
	},
	"set_current_screen": func(r *runner, a map[string]any) (any, error) {
		screen := argInt(a, "screen")
		if screen < 0 || screen >= r.host.Display.ScreenCount() {
			return nil, platform.NewError(platform.CodeInvalidParameter, "set_current_screen", fmt.Sprint(screen))
		}
		r.display.SetCurrentScreen(screen)
		return nil, nil
	},
	"center_window": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.CenterWindow()
		return nil, nil
	},
	"window_position": func(r *runner, a map[string]any) (any, error) {
		p := r.host.Display.WindowPosition()
		return map[string]any{"x": p.X, "y": p.Y}, nil
	},
	"window_size": func(r *runner, a map[string]any) (any, error) {
		s := r.host.Display.WindowSize()
		return map[string]any{"width": s.Width, "height": s.Height}, nil
	},
	"set_vsync": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.SetUseVSync(argBool(a, "enabled"))
		return nil, nil
	},
	"vsync_enabled": func(r *runner, a map[string]any) (any, error) {
		return r.host.Display.IsVSyncEnabled(), nil
	},
	"set_screen_orientation": func(r *runner, a map[string]any) (any, error) {
		name := argString(a, "orientation")
		o, ok := display.ParseScreenOrientation(name)
		if !ok {
			return nil, platform.NewError(platform.CodeInvalidParameter, "set_screen_orientation", name)
		}
		r.host.Display.SetScreenOrientation(o)
		return nil, nil
	},
	"screen_orientation": func(r *runner, a map[string]any) (any, error) {
		return r.host.Display.ScreenOrientation().String(), nil
	},
	"set_clipboard": func(r *runner, a map[string]any) (any, error) {
		r.host.Display.SetClipboard(argString(a, "text"))
		return nil, nil
	},
	"clipboard": func(r *runner, a map[string]any) (any, error) {
		return r.host.Display.Clipboard(), nil
	},
	"dialog_show": func(r *runner, a map[string]any) (any, error) {
		picked := -1
		err := r.host.Display.DialogShow(argString(a, "title"), argString(a, "description"), argStrings(a, "buttons"), func(i int) {
			picked = i
		})
		return picked, err
	},
	"dialog_input_text": func(r *runner, a map[string]any) (any, error) {
		var text string
		err := r.host.Display.DialogInputText(argString(a, "title"), argString(a, "description"), argString(a, "partial"), func(ok bool, s string) {
			text = s
		})
		return text, err
	},
	"set_last_error": func(r *runner, a map[string]any) (any, error) {
		r.host.OS.SetLastError(argString(a, "message"))
		return nil, nil
	},
	"last_error": func(r *runner, a map[string]any) (any, error) {
		return r.host.OS.LastError(), nil
	},
	"restart_on_exit": func(r *runner, a map[string]any) (any, error) {
		r.host.OS.SetRestartOnExit(true, argStrings(a, "args"))
		return nil, nil
	},
	"user_data_dir": func(r *runner, a map[string]any) (any, error) {
		return r.host.OS.UserDataDir(), nil
	},
	"system_dir": func(r *runner, a map[string]any) (any, error) {
		name := argString(a, "dir")
		dir, ok := platform.ParseSystemDir(name)
		if !ok {
			return nil, platform.NewError(platform.CodeInvalidParameter, "system_dir", "unknown directory "+name)
		}
		return r.host.OS.SystemDir(dir), nil
	},
	"delay_usec": func(r *runner, a map[string]any) (any, error) {
		r.host.OS.DelayUsec(uint32(argInt(a, "usec")))
		return nil, nil
	},
	"ticks_msec": func(r *runner, a map[string]any) (any, error) {
		return r.host.OS.TicksMsec(), nil
	},
	"run_frames": func(r *runner, a map[string]any) (any, error) {
		n := argInt(a, "frames")
		if n <= 0 {
			return nil, platform.NewError(platform.CodeInvalidParameter, "run_frames", "frames must be positive")
		}
		loop := &host.FrameLoop{Frames: n}
		err := r.host.Run(context.Background(), loop)
		return loop.Count(), err
	},
}

// Ops lists the operation names scenarios may use, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseErrorType(name string) (logger.ErrorType, error) {
	switch name {
	case "", "error":
		return logger.ErrError, nil
	case "warning":
		return logger.ErrWarning, nil
	case "script":
		return logger.ErrScript, nil
	case "shader":
		return logger.ErrShader, nil
	default:
		return 0, platform.NewError(platform.CodeInvalidParameter, "report_error", "unknown error type "+name)
	}
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func argBool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func argStrings(args map[string]any, key string) []string {
	list, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = fmt.Sprint(v)
	}
	return out
}
