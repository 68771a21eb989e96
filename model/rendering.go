package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "x"
	gridPosDead  = "-"

	defaultMargin = 2

	unixClearCmd    = "clear"
	windowsClearCmd = "cls"
	ansiClear       = "\033[H\033[2J"
)

// TerminalRenderer prints the visible part of a board as rows of glyphs.
// Margin rows and columns on every side are hidden.
type TerminalRenderer struct {
	Out         io.Writer
	AliveGlyph  string
	DeadGlyph   string
	Margin      int
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to stdout with the
// reference glyphs and margin.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		Out:         os.Stdout,
		AliveGlyph:  gridPosAlive,
		DeadGlyph:   gridPosDead,
		Margin:      defaultMargin,
		ClearScreen: true,
	}
}

// Display renders the status line and the visible rows of b
func (r *TerminalRenderer) Display(b *Board, status string) error {
	w := bufio.NewWriter(r.Out)
	if status != "" {
		w.WriteString(status)
		w.WriteByte('\n')
	}
	for row := r.Margin; row < b.Rows()-r.Margin; row++ {
		for col := r.Margin; col < b.Columns()-r.Margin; col++ {
			if b.Get(row, col) == Alive {
				w.WriteString(r.AliveGlyph)
			} else {
				w.WriteString(r.DeadGlyph)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen. The clear command is only used when
// writing to the process stdout; other writers, and a stdout where the
// command fails, get an ANSI escape.
func (r *TerminalRenderer) Clear() error {
	if !r.ClearScreen {
		return nil
	}
	if r.Out != os.Stdout {
		_, err := io.WriteString(r.Out, ansiClear)
		return errors.Wrap(err, "[Clear] failed to write escape")
	}

	name := unixClearCmd
	args := []string{}
	if runtime.GOOS == "windows" {
		name, args = "cmd", []string{"/c", windowsClearCmd}
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		// no usable terminal (TERM unset, command missing): use the escape
		_, err = io.WriteString(r.Out, ansiClear)
		return errors.Wrap(err, "[Clear] failed to write escape")
	}
	return nil
}
