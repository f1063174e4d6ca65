package page

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"chamber/sites/internal/domain"
	"chamber/sites/internal/render"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/source"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
)

const day = 24 * time.Hour

// Discover shows the fixed places catalog and greets the visitor according
// to their previous visit.
func Discover(places source.Loader[domain.Place]) Page {
	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		sh.SetText("#visit-message", VisitMessage(ctx, v.Store, v.Now))

		container, ok := sh.Region("#discover-grid")
		if !ok {
			log.Warn("discover: shell has no #discover-grid")
			return nil
		}

		listing := &Listing[domain.Place]{
			Name:   "discover",
			Source: places,
			Select: selector.Identity[domain.Place](),
			Renderer: render.Renderer[domain.Place]{
				Card:        render.PlaceCard,
				Empty:       "No places to show yet.",
				StatusClass: "discover-status",
			},
			Container: container,
		}
		listing.Load(ctx)
		return nil
	})
}

// VisitMessage compares now with the stored time of the last visit and
// records now as the new last visit. Timestamps are Unix milliseconds.
func VisitMessage(ctx context.Context, store state.Store, now time.Time) string {
	stored, ok, err := store.Get(ctx, state.KeyLastVisit)
	if err != nil {
		log.Warnf("discover: failed to read last visit: %v", err)
	}
	if err := store.Set(ctx, state.KeyLastVisit, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		log.Warnf("discover: failed to record visit: %v", err)
	}

	lastMillis, parseErr := strconv.ParseInt(stored, 10, 64)
	if !ok || stored == "" || parseErr != nil {
		return "Welcome! Let us know if you have any questions."
	}

	elapsed := now.Sub(time.UnixMilli(lastMillis))
	days := int(elapsed / day)
	switch {
	case elapsed < day:
		return "Back so soon! Awesome!"
	case days == 1:
		return "You last visited 1 day ago."
	default:
		return fmt.Sprintf("You last visited %d days ago.", days)
	}
}
