package page

import (
	"context"
	"slices"

	"chamber/sites/internal/domain"
	"chamber/sites/internal/render"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/source"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
)

// Directory lists every member. ?view=grid|list switches the layout; the
// records shown do not depend on it.
func Directory(members source.Loader[domain.Member]) Page {
	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		container, ok := sh.Region("#member-container")
		if !ok {
			log.Warn("directory: shell has no #member-container")
			return nil
		}

		listing := &Listing[domain.Member]{
			Name:   "directory",
			Source: members,
			Select: selector.Identity[domain.Member](),
			Renderer: render.Renderer[domain.Member]{
				Card:        render.MemberCard,
				Empty:       "No members are published yet. Please check back soon.",
				StatusClass: "directory-status",
			},
			Selection: state.NewSelection(domain.ViewGrid.String()),
			Messages: Messages{
				Loading: "Loading member directory...",
				Failure: "Unable to load the directory right now. Please refresh or try again later.",
			},
			Container: container,
			Bind: func(view string) {
				for _, mode := range domain.ViewModes {
					container.SetClass(mode.ContainerClass(), mode.String() == view)
				}
				sh.MarkActive("data-view", view)
			},
		}

		if view := domain.ViewMode(v.Query.Get("view")); slices.Contains(domain.ViewModes, view) {
			listing.Apply(ctx, view.String())
		}
		listing.Load(ctx)
		return nil
	})
}
