package page

import (
	"context"
	"strings"

	"chamber/sites/internal/domain"
	"chamber/sites/internal/render"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/source"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
)

// Pathways lists career roles filtered by track. The track persists across
// visits; ?track= changes it and ?role= opens the detail modal.
func Pathways(roles source.Loader[domain.Role]) Page {
	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		container, ok := sh.Region("#roles-grid")
		if !ok {
			log.Warn("pathways: shell has no #roles-grid")
			return nil
		}

		track := state.NewPersistentSelection(v.Store, state.KeyTrackFilter, domain.AllTracks)
		if err := track.Restore(ctx); err != nil {
			log.Warnf("pathways: %v", err)
		}

		listing := &Listing[domain.Role]{
			Name:   "pathways",
			Source: source.RequireRecords(roles),
			Select: selector.ExactMatch(func(r domain.Role) string { return r.Track }),
			Renderer: render.Renderer[domain.Role]{
				Card:        render.RoleCard,
				Empty:       "No roles match this track right now.",
				StatusClass: "status",
			},
			Selection: track,
			Messages: Messages{
				Loading: "Loading roles...",
				Failure: "Unable to load roles right now. Please refresh later.",
			},
			Container: container,
			Bind: func(value string) {
				sh.MarkActive("data-track", value)
			},
		}
		if _, ok := sh.Region("#roles-status"); ok {
			listing.StatusSlot = func(message string) { sh.SetText("#roles-status", message) }
		}

		if v.Query.Has("track") {
			value := v.Query.Get("track")
			if value == "" {
				value = domain.AllTracks
			}
			listing.Apply(ctx, value)
		}
		listing.Load(ctx)

		if id := v.Query.Get("role"); id != "" && listing.Phase() == PhaseLoaded {
			if role, found := domain.FindRole(listing.Records(), id); found {
				OpenRoleModal(sh, role)
			}
		}
		return nil
	})
}

// OpenRoleModal fills #role-modal with the role's details and opens it
func OpenRoleModal(sh *shell.Shell, role domain.Role) {
	modal := sh.Find("#role-modal")
	if modal.Length() == 0 {
		return
	}

	fields := map[string]string{
		"title":   role.Title,
		"track":   role.Track,
		"level":   role.Level,
		"summary": role.Summary,
		"skills":  strings.Join(role.Skills, ", "),
		"tools":   strings.Join(role.Tools, ", "),
		"time":    role.TimeToEntry,
		"salary":  role.SalaryRange,
	}
	for name, text := range fields {
		modal.Find("[data-modal-" + name + "]").SetText(text)
	}

	alt := role.ImageAlt
	if alt == "" {
		alt = role.Title + " illustration"
	}
	image := modal.Find("[data-modal-image]")
	image.SetAttr("src", role.Image)
	image.SetAttr("alt", alt)

	modal.SetAttr("open", "")
}
