package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const ruleWidth = 60

// console writes the human-readable run transcript. Structured diagnostics
// go to the logger instead.
type console struct {
	w       io.Writer
	heading *color.Color
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
	dim     *color.Color
	bar     *progressbar.ProgressBar
}

func newConsole(w io.Writer, colorize bool) *console {
	c := &console{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
	for _, col := range []*color.Color{c.heading, c.ok, c.warn, c.fail, c.dim} {
		if colorize {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func (c *console) rule() {
	fmt.Fprintln(c.w, strings.Repeat("=", ruleWidth))
}

func (c *console) banner(title string) {
	c.rule()
	c.heading.Fprintf(c.w, "  %s\n", title)
	c.rule()
}

func (c *console) section(title string) {
	c.clearBar()
	c.heading.Fprintf(c.w, "%s\n\n", title)
}

func (c *console) done(msg string) {
	c.clearBar()
	c.ok.Fprintf(c.w, "\n✓ %s\n\n", msg)
}

func (c *console) line(format string, args ...any) {
	c.clearBar()
	fmt.Fprintf(c.w, "  "+format+"\n", args...)
}

func (c *console) success(format string, args ...any) {
	c.clearBar()
	c.ok.Fprintf(c.w, "  ✓ "+format+"\n", args...)
}

func (c *console) warning(format string, args ...any) {
	c.clearBar()
	c.warn.Fprintf(c.w, "  ! "+format+"\n", args...)
}

func (c *console) failure(format string, args ...any) {
	c.clearBar()
	c.fail.Fprintf(c.w, "  ✗ "+format+"\n", args...)
}

// attach routes subsequent lines around bar until detach.
func (c *console) attach(bar *progressbar.ProgressBar) {
	c.bar = bar
}

func (c *console) detach() {
	if c.bar != nil {
		_ = c.bar.Finish()
	}
	c.bar = nil
}

// clearBar blanks the bar line so the next write to its writer, a log record
// included, starts at column zero. The bar redraws on its next Add.
func (c *console) clearBar() {
	if c.bar != nil {
		_ = c.bar.Clear()
	}
}
