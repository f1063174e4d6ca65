package page

import (
	"context"
	"net/url"
	"time"

	"chamber/sites/internal/shell"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
)

const missingValue = "—"

// Join stamps the hidden #timestamp input with the time the form was served
func Join() Page {
	return Func(func(_ context.Context, sh *shell.Shell, v Visit) error {
		stampForm(sh, v.Now)
		return nil
	})
}

// Resources restores the visitor's saved interest into select#interest.
// ?interest= saves a new one.
func Resources() Page {
	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		stampForm(sh, v.Now)

		interest := state.NewPersistentSelection(v.Store, state.KeyInterest, "")
		if err := interest.Restore(ctx); err != nil {
			log.Warnf("resources: %v", err)
		}
		if v.Query.Has("interest") {
			if err := interest.Set(ctx, v.Query.Get("interest")); err != nil {
				log.Warnf("resources: %v", err)
			}
		}
		if value := interest.Get(); value != "" {
			sh.SelectOption("select#interest", value)
		}
		return nil
	})
}

// ChamberThanks echoes the submitted membership application
func ChamberThanks() Page {
	return thanks("firstName", "lastName", "email", "phone", "organization")
}

// ProjectThanks echoes the submitted pathways interest form and keeps the
// chosen interest so the resources form comes back preselected
func ProjectThanks() Page {
	summary := thanks("name", "email", "interest", "goal")
	return Func(func(ctx context.Context, sh *shell.Shell, v Visit) error {
		if value := v.Query.Get("interest"); value != "" {
			interest := state.NewPersistentSelection(v.Store, state.KeyInterest, "")
			if err := interest.Set(ctx, value); err != nil {
				log.Warnf("thankyou: %v", err)
			}
		}
		return summary.Render(ctx, sh, v)
	})
}

func thanks(keys ...string) Page {
	return Func(func(_ context.Context, sh *shell.Shell, v Visit) error {
		FillSummary(sh, v.Query, keys...)
		sh.SetText("#summary-timestamp", FormatSubmitted(v.Query.Get("timestamp")))
		return nil
	})
}

// FillSummary writes each query value into #summary-<key>, or an em dash
// when the value is missing
func FillSummary(sh *shell.Shell, query url.Values, keys ...string) {
	for _, key := range keys {
		value := query.Get(key)
		if value == "" {
			value = missingValue
		}
		sh.SetText("#summary-"+key, value)
	}
}

// FormatSubmitted renders a form timestamp for people. Unparseable input is
// returned unchanged.
func FormatSubmitted(raw string) string {
	if raw == "" {
		return missingValue
	}
	submitted, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return submitted.Format("Monday, January 2, 2006 at 3:04 PM")
}

func stampForm(sh *shell.Shell, now time.Time) {
	sh.SetAttr("#timestamp", "value", now.UTC().Format(time.RFC3339))
}
