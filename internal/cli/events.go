package cli

import (
	"errors"
	"strings"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/validate"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Event commands",
	}
	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsShowCmd(app))
	cmd.AddCommand(newEventsCreateCmd(app))
	cmd.AddCommand(newEventsUpdateCmd(app))
	cmd.AddCommand(newEventsDeleteCmd(app))
	cmd.AddCommand(newEventsJoinCmd(app))
	cmd.AddCommand(newEventsLeaveCmd(app))
	cmd.AddCommand(newEventsShareCmd(app))
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	var (
		query     string
		from, to  string
		sortOrder string
		page      int
		limit     int
		mine      bool
		attending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.DateBound(from); err != nil {
				return writeErr(cmd, err)
			}
			if err := validate.DateBound(to); err != nil {
				return writeErr(cmd, err)
			}
			sortKey := api.SortDateAsc
			switch strings.TrimSpace(sortOrder) {
			case "", "asc":
			case "desc":
				sortKey = api.SortDateDesc
			default:
				return writeErr(cmd, errors.New("sort must be asc or desc"))
			}

			client, _, cfg, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if limit <= 0 {
				limit = cfg.PageSize
			}
			if page <= 0 {
				page = 1
			}

			res, err := client.ListEvents(cmd.Context(), api.ListEventsQuery{
				Page: page, Limit: limit, Sort: sortKey,
				Query: query, From: from, To: to,
				Mine: mine, Attending: attending,
			})
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}

			meta := model.PageMeta{Page: page, Limit: limit}
			if res.Meta != nil {
				meta = *res.Meta
			}
			data := res.Data
			if data == nil {
				data = []model.Event{}
			}
			return writeOut(cmd, app, map[string]any{"data": data, "meta": meta})
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "Free-text search")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Latest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sortOrder, "sort", "asc", "Sort by date (asc|desc)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default: config page_size)")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only events I created")
	cmd.Flags().BoolVar(&attending, "attending", false, "Only events I joined")
	return cmd
}

func newEventsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			client, _, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			ev, err := client.GetEvent(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
}

func eventFlags(cmd *cobra.Command, p *eventFlagValues) {
	cmd.Flags().StringVar(&p.title, "title", "", "Event title")
	cmd.Flags().StringVar(&p.description, "description", "", "Event description (markdown)")
	cmd.Flags().StringVar(&p.date, "date", "", "Event date (e.g. 2026-09-12T18:00)")
	cmd.Flags().StringVar(&p.location, "location", "", "Event location")
	cmd.Flags().BoolVar(&p.public, "public", true, "Whether the event is publicly listed")
	cmd.Flags().StringVar(&p.category, "category", "", "Event category")
	cmd.Flags().StringVar(&p.imageURL, "image-url", "", "Cover image URL")
}

type eventFlagValues struct {
	title, description, date, location, category, imageURL string
	public                                                 bool
}

func (p eventFlagValues) params() (api.EventParams, error) {
	if err := validate.EventTitle(p.title); err != nil {
		return api.EventParams{}, err
	}
	when, err := validate.EventDate(p.date)
	if err != nil {
		return api.EventParams{}, err
	}
	if err := validate.ImageURL(p.imageURL); err != nil {
		return api.EventParams{}, err
	}
	return api.EventParams{
		Title:       strings.TrimSpace(p.title),
		Description: p.description,
		Date:        when,
		Location:    strings.TrimSpace(p.location),
		IsPublic:    p.public,
		Category:    strings.TrimSpace(p.category),
		ImageURL:    strings.TrimSpace(p.imageURL),
	}, nil
}

func newEventsCreateCmd(app *App) *cobra.Command {
	var vals eventFlagValues

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := vals.params()
			if err != nil {
				return writeErr(cmd, err)
			}
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			ev, err := client.CreateEvent(cmd.Context(), params)
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
	eventFlags(cmd, &vals)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEventsUpdateCmd(app *App) *cobra.Command {
	var vals eventFlagValues

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update an event you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			params, err := vals.params()
			if err != nil {
				return writeErr(cmd, err)
			}
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			ev, err := client.UpdateEvent(cmd.Context(), id, params)
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
	eventFlags(cmd, &vals)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEventsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			// Destructive: require the explicit confirmation flag.
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			if err := client.DeleteEvent(cmd.Context(), id); err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func newEventsJoinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join <event-id>",
		Short: "Attend an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleJoin(cmd, app, args[0], true)
		},
	}
}

func newEventsLeaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leave <event-id>",
		Short: "Stop attending an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleJoin(cmd, app, args[0], false)
		},
	}
}

func toggleJoin(cmd *cobra.Command, app *App, rawID string, join bool) error {
	id := strings.TrimSpace(rawID)
	if !model.ValidID(id) {
		return writeErr(cmd, errInvalidID(id))
	}
	client, store, _, err := app.wire()
	if err != nil {
		return writeErr(cmd, err)
	}
	if _, ok := store.Token(); !ok {
		return writeErr(cmd, errNotLoggedIn())
	}

	var ev model.Event
	if join {
		ev, err = client.JoinEvent(cmd.Context(), id)
	} else {
		ev, err = client.LeaveEvent(cmd.Context(), id)
	}
	if err != nil {
		return writeErr(cmd, friendlyErr(client.BaseURL(), err))
	}
	return writeOut(cmd, app, map[string]any{"data": ev})
}

func newEventsShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share <event-id>",
		Short: "Print a shareable link for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			client, _, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]string{"url": shareURL(client.BaseURL(), id)},
			})
		},
	}
}

// shareURL derives the public web URL for an event from the API base URL
// (the site serves the app one level above /api).
func shareURL(base, id string) string {
	base = strings.TrimRight(base, "/")
	base = strings.TrimSuffix(base, "/api")
	return base + "/events/" + id
}
