package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/panel"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset = "\033[0m"
	ColorBlue  = "\033[34m"
	ColorCyan  = "\033[36m"
	ColorGray  = "\033[90m"
	ColorBold  = "\033[1m"

	ClearScreen    = "\033[2J"
	MoveCursorHome = "\033[H"
)

const (
	defaultWidth = 74
	minWidth     = 40
	maxWidth     = 100
)

// TerminalWidth returns the usable width of the terminal behind f, falling
// back to a fixed width when f is not a terminal.
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < minWidth+8 {
		return defaultWidth
	}
	width -= 4
	if width > maxWidth {
		width = maxWidth
	}
	return width
}

// UseColor reports whether colored output should be written to f: enabled
// must be set, NO_COLOR unset, and f a terminal.
func UseColor(f *os.File, enabled bool) bool {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Terminal draws messages and panel views as plain text.
type Terminal struct {
	w     io.Writer
	width int
	color bool
}

// NewTerminal creates a renderer writing to w, wrapping at width columns.
func NewTerminal(w io.Writer, width int, color bool) *Terminal {
	if width < minWidth {
		width = minWidth
	}
	return &Terminal{w: w, width: width, color: color}
}

func (t *Terminal) paint(style, s string) string {
	if !t.color || style == "" {
		return s
	}
	return style + s + ColorReset
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.w, s)
}

// Greeting prints the empty-conversation welcome.
func (t *Terminal) Greeting(hasAvatar bool) {
	icon := "[bot]"
	if hasAvatar {
		icon = "[avatar]"
	}
	t.println(t.paint(ColorBold, icon+" Hi, I'm the Digital Twin."))
	t.println("Ask me about my experience, skills, or projects to see the magic happen!")
	t.println("")
}

// Message prints one chat message.
func (t *Terminal) Message(m twin.Message) {
	style := ColorCyan
	if m.Role == twin.RoleAssistant {
		style = ColorBlue
	}
	label := t.paint(ColorBold+style, m.Label()+">")
	t.println(label + " " + wrap(m.Content, t.width-runewidth.StringWidth(m.Label())-2))
}

// View prints a panel view.
func (t *Terminal) View(v panel.View) {
	switch view := v.(type) {
	case *panel.TimelineView:
		t.timeline(view)
	case *panel.ProjectView:
		t.project(view)
	case *panel.RadarView:
		t.radar(view)
	case *panel.PlaceholderView:
		t.placeholder(view)
	default:
		t.placeholder(&panel.PlaceholderView{Message: panel.WaitingMessage})
	}
}

func (t *Terminal) title(s string) {
	t.println(t.paint(ColorBold, s))
	t.println(strings.Repeat("─", runewidth.StringWidth(s)))
}

func (t *Terminal) timeline(v *panel.TimelineView) {
	t.title("Experience Journey")
	for _, entry := range v.Entries {
		marker, style := "○", ColorGray
		if entry.Highlighted {
			marker, style = "●", ColorBold+ColorBlue
		}
		t.println(t.paint(style, fmt.Sprintf("%s %s", marker, entry.Date)))
		t.println(t.paint(style, "│ "+entry.Title))
		t.println("│ " + entry.Organization)
		for _, line := range strings.Split(wrap(entry.Description, t.width-2), "\n") {
			t.println("│ " + line)
		}
		t.println("│")
	}
}

func (t *Terminal) project(v *panel.ProjectView) {
	p := v.Project
	inner := t.width - 4

	var lines []string
	lines = append(lines, t.paint(ColorBold, p.Title))
	lines = append(lines, t.paint(ColorGray, "Project Showcase"))
	lines = append(lines, "")
	lines = append(lines, strings.Split(wrap(p.Description, inner), "\n")...)
	if len(p.TechStack) > 0 {
		lines = append(lines, "")
		lines = append(lines, strings.Split(wrap(techBadges(p.TechStack), inner), "\n")...)
	}
	if p.Image != "" {
		lines = append(lines, "", t.paint(ColorGray, "image: "+p.Image))
	}

	t.println("┌" + strings.Repeat("─", inner+2) + "┐")
	for _, line := range lines {
		t.println("│ " + padRight(line, inner, t.color) + " │")
	}
	t.println("└" + strings.Repeat("─", inner+2) + "┘")
}

func (t *Terminal) radar(v *panel.RadarView) {
	t.title(v.Title)

	nameWidth := 0
	for _, axis := range v.Chart.Axes {
		if w := runewidth.StringWidth(axis.Name); w > nameWidth {
			nameWidth = w
		}
	}

	barWidth := t.width - nameWidth - 20
	if barWidth < 10 {
		barWidth = 10
	}
	for _, axis := range v.Chart.Axes {
		t.println(fmt.Sprintf("%s %s %3.0f %s",
			runewidth.FillRight(axis.Name, nameWidth),
			t.paint(ColorBlue, progressBar(axis.Score, barWidth)),
			axis.Score,
			t.paint(ColorGray, fmt.Sprintf("%4.0f°", axis.Angle)),
		))
	}
}

func (t *Terminal) placeholder(v *panel.PlaceholderView) {
	t.println(t.paint(ColorGray, v.Message))
	if v.Reason != nil {
		t.println(t.paint(ColorGray, "("+v.Reason.Error()+")"))
	}
}

func techBadges(stack []string) string {
	badges := make([]string, len(stack))
	for i, tech := range stack {
		badges[i] = "[" + tech + "]"
	}
	return strings.Join(badges, " ")
}

// progressBar draws a fixed-width bar filled to score percent.
func progressBar(score float64, width int) string {
	filled := int(math.Round(score / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// wrap breaks s into lines no wider than width display columns.
func wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	return runewidth.Wrap(s, width)
}

// padRight pads s to width display columns, ignoring color sequences.
func padRight(s string, width int, colored bool) string {
	visible := s
	if colored {
		visible = stripANSI(s)
	}
	w := runewidth.StringWidth(visible)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
