package page

import (
	"context"

	"chamber/sites/internal/domain"
	"chamber/sites/internal/render"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/source"

	log "github.com/sirupsen/logrus"
)

// Home shows two or three randomly drawn silver or gold members and, when
// configured, the weather panel.
func Home(members source.Loader[domain.Member], rng selector.Rand, weather Panel) Page {
	eligible := func(m domain.Member) bool {
		return m.Level() >= domain.SpotlightMinLevel
	}

	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		if weather != nil {
			weather.Render(ctx, sh, v.Now)
		}

		container, ok := sh.Region("#spotlight-container")
		if !ok {
			log.Warn("home: shell has no #spotlight-container")
			return nil
		}

		listing := &Listing[domain.Member]{
			Name:   "spotlight",
			Source: members,
			Select: selector.Sample(eligible, rng),
			Renderer: render.Renderer[domain.Member]{
				Card:        render.SpotlightCard,
				Empty:       "No featured members to display yet.",
				StatusClass: "spotlight-status",
			},
			Messages: Messages{
				Loading: "Loading spotlights...",
				Failure: "Unable to load spotlight members right now.",
			},
			Container: container,
		}
		listing.Load(ctx)
		return nil
	})
}
