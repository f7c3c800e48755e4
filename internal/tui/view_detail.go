package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewDetail() string {
	d := m.detail
	if d.isLoading && d.event.Title == "" {
		return m.spin.View() + " loading event..."
	}
	if d.errMsg != "" {
		return styleError().Render(d.errMsg) + "\n" + styleMuted().Render("r: retry  esc: back")
	}

	bodyW := m.width - 2
	if bodyW > 90 {
		bodyW = 90
	}

	var b strings.Builder
	b.WriteString(m.detailHeader(bodyW))

	if desc := strings.TrimSpace(d.event.Description); desc != "" {
		b.WriteString("\n" + renderMarkdown(desc, bodyW) + "\n")
	}

	b.WriteString("\n" + m.detailComments(bodyW))

	if m.composing {
		label := "new comment"
		if m.replyToID != "" {
			label = "reply"
		}
		b.WriteString("\n" + crumbStyle.Render(label) + "\n" + m.commentArea.View() + "\n")
		if d.isSendingComment {
			b.WriteString(m.spin.View() + " posting...\n")
		}
	}
	if d.commentErr != "" {
		b.WriteString("\n" + styleError().Render(d.commentErr) + "\n")
	}
	if d.deleteErr != "" {
		b.WriteString("\n" + styleError().Render(d.deleteErr) + "\n")
	}

	return b.String()
}

func (m appModel) detailHeader(width int) string {
	d := m.detail
	uid := m.userID()

	title := headerStyle.Render(strings.TrimSpace(d.event.Title))
	markers := ""
	if m.list.isFavorite(d.eventID) {
		markers += " " + lipFavorite.Render("★")
	}
	if d.event.Attending(uid) {
		markers += " " + lipAttend.Render("✓ attending")
	}

	var b strings.Builder
	b.WriteString(fitLine(title+markers, width) + "\n")

	meta := make([]string, 0, 4)
	if !d.event.Date.IsZero() {
		meta = append(meta, formatEventDate(d.event.Date)+" ("+relativeTime(d.event.Date, time.Now())+")")
	}
	if loc := strings.TrimSpace(d.event.Location); loc != "" {
		meta = append(meta, loc)
	}
	if cat := strings.TrimSpace(d.event.Category); cat != "" {
		meta = append(meta, cat)
	}
	if !d.event.IsPublic {
		meta = append(meta, "private")
	}
	if len(meta) > 0 {
		b.WriteString(crumbStyle.Render(strings.Join(meta, " · ")) + "\n")
	}

	by := strings.TrimSpace(d.event.CreatedBy.Name)
	if by == "" {
		by = d.event.CreatedBy.ID
	}
	line := "by " + by
	if n := len(d.event.Attendees); n == 1 {
		line += " · 1 attendee"
	} else if n > 1 {
		line += " · " + strconv.Itoa(n) + " attendees"
	}
	b.WriteString(crumbStyle.Render(line) + "\n")

	if d.isTogglingAttend {
		b.WriteString(m.spin.View() + " updating attendance...\n")
	}
	if d.attendErr != "" {
		b.WriteString(styleError().Render(d.attendErr) + "\n")
	}
	if d.favErr != "" {
		b.WriteString(styleError().Render(d.favErr) + "\n")
	}
	if d.isDeleting {
		b.WriteString(m.spin.View() + " deleting...\n")
	}
	return b.String()
}

func (m appModel) detailComments(width int) string {
	d := m.detail
	if d.commentsLoading {
		return m.spin.View() + " loading comments..."
	}
	if d.commentsErr != "" {
		return styleError().Render(d.commentsErr)
	}

	rows := buildCommentThreadRows(d.comments)
	head := crumbStyle.Render("comments (" + strconv.Itoa(len(rows)) + ")")
	if len(rows) == 0 {
		return head + "\n" + styleMuted().Render("no comments yet, press c to write one")
	}

	selected := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorSelectedBorder).
		PaddingLeft(1)

	var b strings.Builder
	b.WriteString(head + "\n")
	for i, row := range rows {
		indent := strings.Repeat("  ", row.Depth)
		c := row.Comment

		author := strings.TrimSpace(c.Author.Name)
		if author == "" {
			author = c.Author.ID
		}
		meta := author
		if !c.CreatedAt.IsZero() {
			meta += " · " + relativeTime(c.CreatedAt, time.Now())
		}
		likes := len(c.Likes)
		switch {
		case d.likeDisabled(c.ID):
			meta += " · " + m.spin.View() + " ♥"
		case likes == 1:
			meta += " · ♥ 1"
		case likes > 1:
			meta += " · ♥ " + strconv.Itoa(likes)
		}
		if c.LikedBy(m.userID()) {
			meta += " (liked)"
		}

		body := renderMarkdownCompact(c.Text, width-len(indent)-2)
		entry := crumbStyle.Render(meta) + "\n" + body
		if i == m.commentIdx && !m.composing {
			entry = selected.Render(entry)
		}
		for _, line := range strings.Split(entry, "\n") {
			b.WriteString(indent + line + "\n")
		}
	}
	return b.String()
}
