package display

import (
	"strconv"
	"strings"

	"github.com/roach88/engineos/internal/platform"
)

// DialogShow is the console fallback for a message box. It prints the
// title, description and numbered buttons, then reads a choice from stdin
// until it gets a valid button number. Buttons are numbered from 1; cb
// receives the 0-based index. Closed stdin ends the dialog with FAILED.
func (d *Driver) DialogShow(title, description string, buttons []string, cb func(index int)) error {
	const op = "dialog_show"
	if d.console == nil {
		return platform.Unavailable(op)
	}
	if len(buttons) == 0 {
		return platform.NewError(platform.CodeInvalidParameter, op, "no buttons")
	}

	for {
		d.console.Print("%s\n--------\n%s\n", title, description)
		for i, b := range buttons {
			if i > 0 {
				d.console.Print(", ")
			}
			d.console.Print("%d=%s", i+1, b)
		}
		d.console.Print("\n")

		line, err := d.console.StdinLine(true)
		if err != nil {
			return platform.WrapError(platform.CodeFailed, op, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(buttons) {
			continue
		}
		if cb != nil {
			cb(n - 1)
		}
		return nil
	}
}

// DialogInputText is the console fallback for a text prompt. An empty
// answer keeps partial. cb is required.
func (d *Driver) DialogInputText(title, description, partial string, cb func(ok bool, text string)) error {
	const op = "dialog_input_text"
	if cb == nil {
		return platform.NewError(platform.CodeFailed, op, "no callback")
	}
	if d.console == nil {
		return platform.Unavailable(op)
	}

	d.console.Print("%s\n---------\n%s\n[%s]:\n", title, description, partial)
	line, err := d.console.StdinLine(true)
	if err != nil {
		return platform.WrapError(platform.CodeFailed, op, err)
	}
	text := strings.TrimSpace(line)
	if text == "" {
		text = partial
	}
	cb(true, text)
	return nil
}
