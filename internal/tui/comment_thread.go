package tui

import (
	"strings"

	"eventhive-cli/internal/model"
)

type commentThreadRow struct {
	Comment model.Comment
	Depth   int
}

// buildCommentThreadRows flattens the nested comment tree into display rows:
// each root comment in server order, followed by its replies, depth-first.
// Rows without an id are dropped; duplicates are kept once.
func buildCommentThreadRows(comments []model.Comment) []commentThreadRow {
	if len(comments) == 0 {
		return nil
	}

	out := make([]commentThreadRow, 0, len(comments))
	seen := map[string]bool{}
	var walk func(c model.Comment, depth int)
	walk = func(c model.Comment, depth int) {
		id := strings.TrimSpace(c.ID)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		if depth > 8 {
			depth = 8
		}
		out = append(out, commentThreadRow{Comment: c, Depth: depth})
		for _, kid := range c.Replies {
			walk(kid, depth+1)
		}
	}

	for _, c := range comments {
		walk(c, 0)
	}
	return out
}

func indexOfCommentRow(rows []commentThreadRow, commentID string) int {
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return 0
	}
	for i := range rows {
		if strings.TrimSpace(rows[i].Comment.ID) == commentID {
			return i
		}
	}
	if len(rows) > 0 {
		return len(rows) - 1
	}
	return 0
}
