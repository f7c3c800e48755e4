package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/session"
)

const requestTimeout = 15 * time.Second

func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func authenticateCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		return sessionMsg{sess: store.Authenticate(ctx)}
	}
}

// listenSessionCmd waits for the next session transition published by the
// store. Re-issued after each received message.
func listenSessionCmd(ch <-chan session.Session) tea.Cmd {
	return func() tea.Msg {
		sess, ok := <-ch
		if !ok {
			return nil
		}
		return sessionMsg{sess: sess, sub: true}
	}
}

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		token, err := client.Login(ctx, api.LoginParams{Email: email, Password: password})
		return loginResultMsg{token: token, err: err}
	}
}

func signupCmd(client *api.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		token, err := client.Signup(ctx, api.SignupParams{Name: name, Email: email, Password: password})
		return loginResultMsg{token: token, err: err}
	}
}

func storeTokenCmd(store *session.Store, token string) tea.Cmd {
	return func() tea.Msg {
		if err := store.StoreToken(token); err != nil {
			return sessionMsg{sess: store.Current()}
		}
		ctx, cancel := reqCtx()
		defer cancel()
		return sessionMsg{sess: store.Authenticate(ctx)}
	}
}

func fetchEventsCmd(client *api.Client, mode fetchMode, q api.ListEventsQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		page, err := client.ListEvents(ctx, q)
		if err != nil {
			return eventsPageMsg{mode: mode, page: q.Page, limit: q.Limit, err: err}
		}
		return eventsPageMsg{mode: mode, page: q.Page, limit: q.Limit, events: page.Data, meta: page.Meta}
	}
}

// fetchFavoritesCmd loads the favorite id set. Failures resolve to an empty
// set rather than an error banner; the list renders without markers.
func fetchFavoritesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		events, err := client.MyFavorites(ctx)
		if err != nil {
			return favoritesMsg{err: err}
		}
		ids := make(map[string]bool, len(events))
		for _, ev := range events {
			ids[ev.ID] = true
		}
		return favoritesMsg{ids: ids}
	}
}

func fetchFavoriteEventsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		events, err := client.MyFavorites(ctx)
		return favoriteEventsMsg{events: events, err: err}
	}
}

func toggleFavoriteCmd(client *api.Client, id string, adding bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		var err error
		if adding {
			err = client.AddFavorite(ctx, id)
		} else {
			err = client.RemoveFavorite(ctx, id)
		}
		return favToggleDoneMsg{id: id, adding: adding, err: err}
	}
}

func fetchDetailCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		ev, err := client.GetEvent(ctx, id)
		return detailMsg{event: ev, err: err}
	}
}

func toggleJoinCmd(client *api.Client, id string, leaving bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		var (
			ev  model.Event
			err error
		)
		if leaving {
			ev, err = client.LeaveEvent(ctx, id)
		} else {
			ev, err = client.JoinEvent(ctx, id)
		}
		return joinDoneMsg{event: ev, leaving: leaving, err: err}
	}
}

func fetchCommentsCmd(client *api.Client, eventID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		comments, err := client.ListComments(ctx, eventID)
		return commentsMsg{eventID: eventID, comments: comments, err: err}
	}
}

func addCommentCmd(client *api.Client, eventID, text, parentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		params := api.CommentParams{Event: eventID, Text: strings.TrimSpace(text)}
		if parentID != "" {
			params.ParentComment = parentID
		}
		c, err := client.CreateComment(ctx, params)
		return commentAddedMsg{comment: c, err: err}
	}
}

func toggleLikeCmd(client *api.Client, commentID string, liking bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		var (
			c   model.Comment
			err error
		)
		if liking {
			c, err = client.LikeComment(ctx, commentID)
		} else {
			c, err = client.UnlikeComment(ctx, commentID)
		}
		return likeDoneMsg{commentID: commentID, comment: c, err: err}
	}
}

func deleteCommentCmd(client *api.Client, commentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		err := client.DeleteComment(ctx, commentID)
		return commentDeletedMsg{commentID: commentID, err: err}
	}
}

func deleteEventCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		err := client.DeleteEvent(ctx, id)
		return eventDeletedMsg{id: id, err: err}
	}
}

func saveEventCmd(client *api.Client, editingID string, params api.EventParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		var (
			ev  model.Event
			err error
		)
		if editingID != "" {
			ev, err = client.UpdateEvent(ctx, editingID, params)
		} else {
			ev, err = client.CreateEvent(ctx, params)
		}
		return eventSavedMsg{event: ev, editing: editingID != "", err: err}
	}
}

func copyShareCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return shareCopiedMsg{url: url, err: copyToClipboard(url)}
	}
}

func fetchProfileCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := reqCtx()
		defer cancel()
		u, err := client.GetUser(ctx, id)
		return profileMsg{user: u, err: err}
	}
}

func flashClearCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}
