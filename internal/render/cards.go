package render

import (
	"bytes"
	"html/template"
	"strings"

	"chamber/sites/internal/domain"
)

var funcs = template.FuncMap{
	"phoneHref":  func(p string) template.URL { return template.URL(PhoneHref(p)) },
	"displayURL": DisplayURL,
	"join":       strings.Join,
	"inc":        func(i int) int { return i + 1 },
}

var cards = template.Must(template.New("cards").Funcs(funcs).Parse(`
{{define "member"}}<article class="member-card"{{if .HasLevel}} data-level="{{.LevelValue}}"{{end}} aria-label="{{.Name}}">
<div class="member-hero"><img src="{{.Image}}" alt="{{.Alt}}" loading="lazy">
<div class="member-identity">{{if .HasLevel}}<p class="level">{{.Badge}} member</p>{{end}}<h3>{{.Name}}</h3>{{if .Region}}<p>{{.Region}}</p>{{end}}</div></div>
<div class="member-details">{{if .Description}}<p class="description">{{.Description}}</p>{{end}}
{{- if or .Address .Phone .Website}}<ul class="member-meta">
{{- if .Address}}<li><span>Address:</span>{{.Address}}</li>{{end}}
{{- if .Phone}}<li><span>Phone:</span><a href="{{phoneHref .Phone}}">{{.Phone}}</a></li>{{end}}
{{- if .Website}}<li><span>Website:</span><a href="{{.Website}}" target="_blank" rel="noopener noreferrer">{{displayURL .Website}}</a></li>{{end}}
</ul>{{end}}
{{- if .Services}}<ul class="member-services" aria-label="Highlighted services">{{range .Services}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{- if or .Website .Phone}}<div class="member-actions">
{{- if .Website}}<a href="{{.Website}}" target="_blank" rel="noopener noreferrer" class="button-primary">Visit site</a>{{end}}
{{- if .Phone}}<a href="{{phoneHref .Phone}}" class="button-ghost">Call office</a>{{end}}
</div>{{end}}</div></article>{{end}}

{{define "spotlight"}}<article class="spotlight-card">
<div class="spotlight-header"><img src="{{.Image}}" alt="{{.Alt}}" loading="lazy"><div><p class="membership">{{.Badge}} member</p><h3>{{.Name}}</h3></div></div>
<p class="spotlight-description">{{.Description}}</p>
{{- if or .Location .Phone .Website}}<ul class="spotlight-meta">
{{- if .Location}}<li>{{.Location}}</li>{{end}}
{{- if .Phone}}<li><a href="{{phoneHref .Phone}}">{{.Phone}}</a></li>{{end}}
{{- if .Website}}<li><a href="{{.Website}}" target="_blank" rel="noopener noreferrer">{{displayURL .Website}}</a></li>{{end}}
</ul>{{end}}
{{- if .Website}}<a href="{{.Website}}" target="_blank" rel="noopener noreferrer" class="btn-secondary">Visit website</a>{{end}}
</article>{{end}}

{{define "place"}}<article class="discover-card area-{{inc .Index}}">
<h2>{{.Title}}</h2>
<figure><img src="{{.Image}}" alt="{{.Title}}" loading="lazy"></figure>
{{- if .Address}}<address>{{.Address}}</address>{{end}}
{{- if .Description}}<p>{{.Description}}</p>{{end}}
<button type="button" class="button-outline">Learn more</button>
</article>{{end}}

{{define "role"}}<article class="role-card">
<figure class="role-figure"><img src="{{.Image}}" alt="{{.Alt}}" loading="lazy" decoding="async"></figure>
<h3>{{.Title}}</h3>
<p class="role-meta"><span>{{.Track}}</span>{{if .Level}} · <span>{{.Level}}</span>{{end}}</p>
{{- if .Summary}}<p class="role-summary">{{.Summary}}</p>{{end}}
{{- if or .TimeToEntry .SalaryRange}}<ul>
{{- if .TimeToEntry}}<li><strong>Time to entry:</strong> {{.TimeToEntry}}</li>{{end}}
{{- if .SalaryRange}}<li><strong>Salary range:</strong> {{.SalaryRange}}</li>{{end}}
</ul>{{end}}
<a class="button-outline" data-role="{{.ID}}" href="?role={{.ID}}">View details</a>
</article>{{end}}

{{define "forecast"}}<article class="forecast-card"><p class="day">{{.Day}}</p><p class="temp">{{.Temp}}°C</p><p class="summary">{{.Summary}}</p></article>{{end}}
`))

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := cards.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type memberView struct {
	domain.Member
	Alt        string
	Badge      string
	LevelValue int
	Region     string
	Address    string
	Location   string
}

func newMemberView(m domain.Member, altSuffix string) memberView {
	view := memberView{
		Member:     m,
		Alt:        m.ImageAlt,
		Badge:      LevelLabel(m.Level()),
		LevelValue: int(m.Level()),
		Address:    JoinPresent(", ", m.Address, m.City, m.State, m.Postal),
		Location:   JoinPresent(", ", m.Address, m.City, m.State),
	}
	if view.Alt == "" {
		view.Alt = m.Name + " " + altSuffix
	}

	var region []string
	if cityState := JoinPresent(", ", m.City, m.State); cityState != "" {
		region = append(region, cityState)
	}
	if m.Founded != "" {
		region = append(region, "Est. "+m.Founded)
	}
	view.Region = strings.Join(region, " • ")
	return view
}

// MemberCard is the directory unit for one member
func MemberCard(_ int, m domain.Member) (string, error) {
	return execute("member", newMemberView(m, "wordmark"))
}

// SpotlightCard is the home page unit for one featured member.
// The badge always shows, defaulting to "Member".
func SpotlightCard(_ int, m domain.Member) (string, error) {
	return execute("spotlight", newMemberView(m, "logo"))
}

// PlaceCard is the discover unit; its grid area follows the display position
func PlaceCard(i int, p domain.Place) (string, error) {
	return execute("place", struct {
		domain.Place
		Index int
	}{p, i})
}

// RoleCard is the pathways unit with a detail trigger for the role modal
func RoleCard(_ int, r domain.Role) (string, error) {
	alt := r.ImageAlt
	if alt == "" {
		alt = r.Title + " illustration"
	}
	return execute("role", struct {
		domain.Role
		Alt string
	}{r, alt})
}

// ForecastDay is one entry of the home page weather outlook
type ForecastDay struct {
	Day     string
	Temp    int
	Summary string
}

func ForecastCard(_ int, f ForecastDay) (string, error) {
	return execute("forecast", f)
}
