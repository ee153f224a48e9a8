// Package report renders operator-facing progress banners and error
// blocks for simulation runs. It is side-effect only: nothing here
// returns an error or influences control flow.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	phaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle   = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

const ruleWidth = 50

// Reporter writes diagnostics to a single stream. A nil Reporter is
// valid and discards everything, so callers never guard their calls.
type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) writeln(s string) {
	if r == nil || r.out == nil {
		return
	}
	// Write failures are deliberately swallowed; reporting must never
	// stop the pipeline.
	fmt.Fprintln(r.out, s)
}

// Phase emits a phase-start banner.
func (r *Reporter) Phase(msg string) {
	r.writeln(phaseStyle.Render("*** " + msg))
}

// Banner emits a rule-delimited progress block.
func (r *Reporter) Banner(lines ...string) {
	rule := ruleStyle.Render(strings.Repeat("*", ruleWidth))
	r.writeln(rule)
	for _, line := range lines {
		r.writeln(phaseStyle.Render("*** " + line))
	}
	r.writeln(rule)
}

// Completed emits the success banner.
func (r *Reporter) Completed(lines ...string) {
	rule := ruleStyle.Render(strings.Repeat("*", ruleWidth))
	r.writeln(rule)
	for _, line := range lines {
		r.writeln(okStyle.Render("*** " + line))
	}
	r.writeln(rule)
}

// ErrorBlock emits a clearly delimited failure block, visually distinct
// from progress banners.
func (r *Reporter) ErrorBlock(title string, lines ...string) {
	if r == nil || r.out == nil {
		return
	}
	body := title
	for _, line := range lines {
		body += "\n" + line
	}
	r.writeln(errStyle.Render(body))
}

// Infof emits one unstyled-ish informational line.
func (r *Reporter) Infof(format string, args ...any) {
	r.writeln(infoStyle.Render(fmt.Sprintf(format, args...)))
}
