package page

import (
	"context"
	"net/url"
	"time"

	"chamber/sites/internal/domain"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/source"
	"chamber/sites/internal/state"
)

// Visit is one page load by one visitor
type Visit struct {
	Query    url.Values
	Store    state.Store
	Now      time.Time
	Modified time.Time
}

// Page fills a parsed shell for a visit
type Page interface {
	Render(ctx context.Context, sh *shell.Shell, v Visit) error
}

// Func adapts a plain function to Page
type Func func(ctx context.Context, sh *shell.Shell, v Visit) error

func (f Func) Render(ctx context.Context, sh *shell.Shell, v Visit) error {
	return f(ctx, sh, v)
}

// Static pages only get their footer stamped
var Static = Func(func(context.Context, *shell.Shell, Visit) error { return nil })

// Panel is a self-contained widget rendered into a shell, such as the weather card
type Panel interface {
	Render(ctx context.Context, sh *shell.Shell, now time.Time)
}

// Deps are the data sources the pages draw from
type Deps struct {
	Members source.Loader[domain.Member]
	Roles   source.Loader[domain.Role]
	Places  source.Loader[domain.Place]
	Rand    selector.Rand
	Weather Panel
}

// Route maps a URL path to the shell file under the site root and the page
// that fills it
type Route struct {
	Path   string
	Shell  string
	Footer shell.FooterFormat
	Page   Page
}

// Render fills the shell and stamps its footer
func (r Route) Render(ctx context.Context, sh *shell.Shell, v Visit) error {
	if err := r.Page.Render(ctx, sh, v); err != nil {
		return err
	}
	sh.StampFooter(v.Now, v.Modified, r.Footer)
	return nil
}

// Routes lists every page of the sites
func Routes(deps Deps) []Route {
	return []Route{
		{Path: "/", Shell: "index.html", Footer: shell.FooterModification, Page: Static},
		{Path: "/chamber/", Shell: "chamber/index.html", Footer: shell.FooterUpdated, Page: Home(deps.Members, deps.Rand, deps.Weather)},
		{Path: "/chamber/directory.html", Shell: "chamber/directory.html", Footer: shell.FooterUpdated, Page: Directory(deps.Members)},
		{Path: "/chamber/discover.html", Shell: "chamber/discover.html", Footer: shell.FooterUpdated, Page: Discover(deps.Places)},
		{Path: "/chamber/join.html", Shell: "chamber/join.html", Footer: shell.FooterUpdated, Page: Join()},
		{Path: "/chamber/thankyou.html", Shell: "chamber/thankyou.html", Footer: shell.FooterUpdated, Page: ChamberThanks()},
		{Path: "/finalproject/", Shell: "finalproject/index.html", Footer: shell.FooterUpdated, Page: Static},
		{Path: "/finalproject/pathways.html", Shell: "finalproject/pathways.html", Footer: shell.FooterUpdated, Page: Pathways(deps.Roles)},
		{Path: "/finalproject/resources.html", Shell: "finalproject/resources.html", Footer: shell.FooterUpdated, Page: Resources()},
		{Path: "/finalproject/thankyou.html", Shell: "finalproject/thankyou.html", Footer: shell.FooterUpdated, Page: ProjectThanks()},
	}
}
