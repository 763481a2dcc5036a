package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/moffa90/go-bfu/updater"
)

// console renders the interactive output: step lines that finish on the
// same row, indented detail lines, and a self-rewriting progress bar. It
// is a plain sink; whether a failure is fatal or advisory is the
// command's call.
type console struct {
	out io.Writer
	tty bool

	// inline is set while a step line is waiting for its verdict;
	// progress while the bar owns the current row.
	inline   bool
	progress bool
}

func newConsole() *console {
	return &console{
		out: os.Stdout,
		tty: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (c *console) columns() int {
	if c.tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// clearRow finishes any dangling step line and wipes a live progress bar
// so the next line starts on a clean row.
func (c *console) clearRow() {
	if c.inline {
		fmt.Fprintln(c.out)
		c.inline = false
	}
	if c.progress {
		fmt.Fprintf(c.out, "\r%s\r", strings.Repeat(" ", c.columns()))
		c.progress = false
	}
}

// step opens an inline "[INFO] msg..." line; ok or fail closes it.
func (c *console) step(msg string) {
	c.clearRow()
	fmt.Fprintf(c.out, "[INFO] %s...", msg)
	c.inline = true
}

func (c *console) ok() {
	if c.inline {
		fmt.Fprintln(c.out, "OK")
		c.inline = false
	}
}

func (c *console) fail() {
	if c.inline {
		fmt.Fprintln(c.out, "ERR")
		c.inline = false
	}
}

func (c *console) info(msg string) {
	c.clearRow()
	fmt.Fprintf(c.out, "\t[INFO] %s\n", msg)
}

func (c *console) warn(msg string) {
	c.clearRow()
	fmt.Fprintf(c.out, "[WARN] %s\n", msg)
}

func (c *console) err(msg string) {
	c.clearRow()
	fmt.Fprintf(c.out, "[ERR ] %s\n", msg)
}

// renderProgress draws the transfer bar in place, or falls back to one
// line per update when stdout is not a terminal.
func (c *console) renderProgress(p updater.Progress) {
	if p.TotalFrames <= 0 {
		return
	}

	if !c.tty {
		fmt.Fprintf(c.out, "[INFO] Progress: %3.0f%% (%d/%d frames)\n", p.Percentage(), p.Frames, p.TotalFrames)
		return
	}

	if c.inline {
		fmt.Fprintln(c.out)
		c.inline = false
	}

	const prefix = "[INFO] Progress: ["
	suffix := fmt.Sprintf("] %3.0f%% %3d s", p.Percentage(), int(p.Elapsed/time.Second))

	width := c.columns() - len(prefix) - len(suffix)
	if width < 10 {
		width = 10
	}
	fill := width * p.Frames / p.TotalFrames
	if fill > width {
		fill = width
	}

	fmt.Fprintf(c.out, "\r%s%s%s%s", prefix, strings.Repeat("*", fill), strings.Repeat(" ", width-fill), suffix)
	if p.Frames < p.TotalFrames {
		c.progress = true
		return
	}
	fmt.Fprintln(c.out)
	c.progress = false
}
