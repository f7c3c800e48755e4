package tui

import (
	"testing"

	"eventhive-cli/internal/model"
)

func TestBuildCommentThreadRows_FlattensDepthFirst(t *testing.T) {
	kid := comment("c2", "kid")
	grandkid := comment("c3", "grandkid")
	kid.Replies = []model.Comment{grandkid}
	root := comment("c1", "root")
	root.Replies = []model.Comment{kid}
	other := comment("c4", "other")

	rows := buildCommentThreadRows([]model.Comment{root, other})
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	wantIDs := []string{"c1", "c2", "c3", "c4"}
	wantDepths := []int{0, 1, 2, 0}
	for i := range rows {
		if rows[i].Comment.ID != wantIDs[i] || rows[i].Depth != wantDepths[i] {
			t.Fatalf("row %d = (%s, %d), want (%s, %d)", i, rows[i].Comment.ID, rows[i].Depth, wantIDs[i], wantDepths[i])
		}
	}
}

func TestBuildCommentThreadRows_DropsEmptyAndDuplicateIDs(t *testing.T) {
	rows := buildCommentThreadRows([]model.Comment{
		comment("c1", "one"),
		comment("", "anonymous row"),
		comment("c1", "dup"),
	})
	if len(rows) != 1 || rows[0].Comment.Text != "one" {
		t.Fatalf("rows = %+v, want single c1", rows)
	}
}

func TestBuildCommentThreadRows_Empty(t *testing.T) {
	if rows := buildCommentThreadRows(nil); rows != nil {
		t.Fatalf("nil input should produce nil rows")
	}
}

func TestIndexOfCommentRow(t *testing.T) {
	rows := buildCommentThreadRows([]model.Comment{comment("c1", "a"), comment("c2", "b")})
	if got := indexOfCommentRow(rows, "c2"); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	if got := indexOfCommentRow(rows, "missing"); got != 1 {
		t.Fatalf("missing id should clamp to last row, got %d", got)
	}
	if got := indexOfCommentRow(rows, ""); got != 0 {
		t.Fatalf("empty id should return 0, got %d", got)
	}
}
