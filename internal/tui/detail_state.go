package tui

import "eventhive-cli/internal/model"

// detailState tracks one opened event. Each mutation that can be in flight
// gets its own loading flag and error slot so a failed attend toggle never
// blanks the event body, and a slow comment fetch never blocks deleting.
type detailState struct {
	eventID   string
	event     model.Event
	isLoading bool
	errMsg    string

	isTogglingAttend bool
	attendErr        string

	isTogglingFav bool
	favErr        string

	isDeleting bool
	deleteErr  string

	comments        []model.Comment
	commentsLoading bool
	commentsErr     string

	isSendingComment bool
	commentErr       string

	// Comment id whose like toggle is in flight. Only that comment's like
	// control is disabled; every other comment stays interactive.
	togglingLikeID string
}

func newDetailState(eventID string) detailState {
	return detailState{eventID: eventID, isLoading: true, commentsLoading: true}
}

func (d *detailState) applyDetail(msg detailMsg) {
	d.isLoading = false
	if msg.err != nil {
		d.errMsg = msg.err.Error()
		return
	}
	d.event = msg.event
}

func (d *detailState) applyJoin(msg joinDoneMsg) {
	d.isTogglingAttend = false
	if msg.err != nil {
		d.attendErr = msg.err.Error()
		return
	}
	d.attendErr = ""
	d.event = msg.event
}

func (d *detailState) applyComments(msg commentsMsg) {
	if msg.eventID != d.eventID {
		return
	}
	d.commentsLoading = false
	if msg.err != nil {
		d.commentsErr = msg.err.Error()
		return
	}
	d.commentsErr = ""
	d.comments = msg.comments
}

func (d *detailState) applyCommentAdded(msg commentAddedMsg) {
	d.isSendingComment = false
	if msg.err != nil {
		d.commentErr = msg.err.Error()
		return
	}
	d.commentErr = ""
	if msg.comment.ParentComment != nil {
		d.attachReply(msg.comment)
		return
	}
	d.comments = append(d.comments, msg.comment)
}

func (d *detailState) attachReply(reply model.Comment) {
	parent := string(*reply.ParentComment)
	for i := range d.comments {
		if d.comments[i].ID == parent {
			d.comments[i].Replies = append(d.comments[i].Replies, reply)
			return
		}
	}
	// Parent not in the loaded set; show the reply at top level rather
	// than dropping it.
	d.comments = append(d.comments, reply)
}

// applyLike replaces the toggled comment with the server's authoritative
// copy. There is no optimistic path for likes.
func (d *detailState) applyLike(msg likeDoneMsg) {
	d.togglingLikeID = ""
	if msg.err != nil {
		d.commentErr = msg.err.Error()
		return
	}
	d.replaceComment(msg.comment)
}

func (d *detailState) replaceComment(c model.Comment) {
	for i := range d.comments {
		if d.comments[i].ID == c.ID {
			// Keep loaded replies if the replacement omits them.
			if len(c.Replies) == 0 && len(d.comments[i].Replies) > 0 {
				c.Replies = d.comments[i].Replies
			}
			d.comments[i] = c
			return
		}
		for j := range d.comments[i].Replies {
			if d.comments[i].Replies[j].ID == c.ID {
				d.comments[i].Replies[j] = c
				return
			}
		}
	}
}

func (d *detailState) applyCommentDeleted(msg commentDeletedMsg) {
	if msg.err != nil {
		d.commentErr = msg.err.Error()
		return
	}
	d.removeComment(msg.commentID)
}

func (d *detailState) removeComment(id string) {
	for i := range d.comments {
		if d.comments[i].ID == id {
			d.comments = append(d.comments[:i], d.comments[i+1:]...)
			return
		}
		for j := range d.comments[i].Replies {
			if d.comments[i].Replies[j].ID == id {
				d.comments[i].Replies = append(d.comments[i].Replies[:j], d.comments[i].Replies[j+1:]...)
				return
			}
		}
	}
}

func (d *detailState) likeDisabled(commentID string) bool {
	return d.togglingLikeID == commentID
}

// ownedBy reports whether the signed-in user created this event.
func (d *detailState) ownedBy(userID string) bool {
	return userID != "" && d.event.CreatedBy.ID == userID
}

func commentOwnedBy(c model.Comment, userID string) bool {
	return userID != "" && c.Author.ID == userID
}
