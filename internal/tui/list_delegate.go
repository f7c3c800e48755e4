package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	lipFavorite = lipgloss.NewStyle().Foreground(colorFavorite)
	lipAttend   = lipgloss.NewStyle().Foreground(colorAttend)
)

// eventDelegate renders a two-line row: bold title with markers, then a
// muted metadata line (date, location, category, attendee count).
type eventDelegate struct {
	title         lipgloss.Style
	titleSelected lipgloss.Style
	meta          lipgloss.Style
	metaSelected  lipgloss.Style
}

func newEventDelegate() eventDelegate {
	return eventDelegate{
		title: lipgloss.NewStyle().Padding(0, 0, 0, 2),
		titleSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorSelectedBorder).
			Foreground(colorSelectedFg).
			Padding(0, 0, 0, 1).
			Bold(true),
		meta: lipgloss.NewStyle().
			Foreground(colorChromeMutedFg).
			Padding(0, 0, 0, 2),
		metaSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorSelectedBorder).
			Foreground(colorChromeMutedFg).
			Padding(0, 0, 0, 1),
	}
}

func (d eventDelegate) Height() int  { return 2 }
func (d eventDelegate) Spacing() int { return 1 }
func (d eventDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d eventDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(eventItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		return
	}

	titleStyle, metaStyle := d.title, d.meta
	if index == m.Index() {
		titleStyle, metaStyle = d.titleSelected, d.metaSelected
	}

	title := fitLine(it.Title(), contentW-2)
	meta := fitLine(it.metaLine(time.Now()), contentW-2)
	fmt.Fprint(w, titleStyle.Render(title)+"\n"+metaStyle.Render(meta))
}

// fitLine pads or truncates a possibly styled line to the given cell width.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(line)
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	if w > width {
		return xansi.Cut(line, 0, width)
	}
	return line
}
