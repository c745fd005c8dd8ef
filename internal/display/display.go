// Package display prints learn's output, colored by category: green for
// success, red for failure, yellow for information, cyan for AI answers and
// blue for help.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	info    = color.New(color.FgYellow)
	ai      = color.New(color.FgCyan)
	bold    = color.New(color.Bold)

	helpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("4")).
		Foreground(lipgloss.Color("4")).
		Padding(0, 1)
)

// Printer writes categorized output to one writer.
type Printer struct {
	w        io.Writer
	render   bool
	renderer *glamour.TermRenderer
}

// New returns a Printer writing to w. With render set, AI answers are
// rendered as markdown.
func New(w io.Writer, render bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{w: w, render: render}
	if render {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100)); err == nil {
			p.renderer = r
		}
	}
	return p
}

// Success prints a green line.
func (p *Printer) Success(format string, args ...any) {
	success.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Failure prints a red line.
func (p *Printer) Failure(format string, args ...any) {
	failure.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Info prints a yellow line.
func (p *Printer) Info(format string, args ...any) {
	info.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Output prints captured command output in green or red, keeping its
// line breaks.
func (p *Printer) Output(text string, ok bool) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	if ok {
		success.Fprintln(p.w, text)
		return
	}
	failure.Fprintln(p.w, text)
}

// AI prints an AI answer.
func (p *Printer) AI(text string) {
	if p.renderer != nil {
		if out, err := p.renderer.Render(text); err == nil {
			ai.Fprintln(p.w, "AI Suggestion:")
			fmt.Fprint(p.w, out)
			return
		}
	}
	ai.Fprintln(p.w, "AI Suggestion: "+text)
}

// Explain prints a command explanation in cyan.
func (p *Printer) Explain(text string) {
	ai.Fprintln(p.w, text)
}

// Help prints text inside a blue rounded box.
func (p *Printer) Help(text string) {
	fmt.Fprintln(p.w, helpBox.Render(strings.TrimRight(text, "\n")))
}

// InstallStatus prints whether app is installed, using the long phrasing of
// one-shot checks.
func (p *Printer) InstallStatus(app string, installed bool) {
	if installed {
		p.Success("%s is installed on your system.", app)
		return
	}
	p.Failure("%s is NOT installed on your system.", app)
}

// ShortInstallStatus prints whether app is installed, as the interactive
// session does.
func (p *Printer) ShortInstallStatus(app string, installed bool) {
	if installed {
		p.Success("%s is installed.", app)
		return
	}
	p.Failure("%s is NOT installed.", app)
}

// Banner prints a bold heading line.
func (p *Printer) Banner(text string) {
	bold.Fprintln(p.w, text)
}

// Spinner shows a progress indicator while a slow call runs.
type Spinner struct {
	s *spinner.Spinner
}

// Spinner returns a started spinner with the given message. It only draws
// when the printer writes to a terminal.
func (p *Printer) Spinner(msg string) *Spinner {
	f, ok := p.w.(*os.File)
	if !ok {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + msg
	s.Start()
	return &Spinner{s: s}
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	if s == nil || s.s == nil {
		return
	}
	s.s.Stop()
}
