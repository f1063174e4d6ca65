package shell

import (
	"testing"
	"time"

	"chamber/sites/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Directory</title></head>
<body>
<button class="view-toggle" data-view="grid">Grid</button>
<button class="view-toggle" data-view="list">List</button>
<section id="member-container" class="directory"><p>static</p></section>
<select id="interest"><option value="">Choose</option><option value="design">Design</option><option value="data" selected>Data</option></select>
<footer><span id="currentyear"></span><span id="lastModified"></span></footer>
</body></html>`

func parse(t *testing.T) *Shell {
	t.Helper()
	sh, err := ParseString(page)
	require.NoError(t, err)
	return sh
}

func TestRegion_IsContainer(t *testing.T) {
	sh := parse(t)
	region, ok := sh.Region("#member-container")
	require.True(t, ok)

	var c render.Container = region
	c.Reset()
	c.AppendHTML(`<article class="member-card">A</article><article class="member-card">B</article>`)
	c.SetClass("grid-view", true)
	c.SetClass("directory", false)

	container := sh.Find("#member-container")
	assert.Equal(t, 2, container.Find("article").Length())
	assert.Equal(t, 0, container.Find("p").Length())
	assert.True(t, container.HasClass("grid-view"))
	assert.False(t, container.HasClass("directory"))

	_, ok = sh.Region("#missing")
	assert.False(t, ok)
}

func TestMarkActive(t *testing.T) {
	sh := parse(t)
	sh.MarkActive("data-view", "list")

	grid := sh.Find(`[data-view="grid"]`)
	list := sh.Find(`[data-view="list"]`)
	assert.False(t, grid.HasClass("active"))
	assert.Equal(t, "false", grid.AttrOr("aria-pressed", ""))
	assert.True(t, list.HasClass("active"))
	assert.Equal(t, "true", list.AttrOr("aria-pressed", ""))
}

func TestSelectOption(t *testing.T) {
	sh := parse(t)
	sh.SelectOption("#interest", "design")

	_, designSelected := sh.Find(`option[value="design"]`).Attr("selected")
	_, dataSelected := sh.Find(`option[value="data"]`).Attr("selected")
	assert.True(t, designSelected)
	assert.False(t, dataSelected)
}

func TestStampFooter(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	modified := time.Date(2026, 3, 4, 15, 5, 0, 0, time.UTC)

	sh := parse(t)
	sh.StampFooter(now, modified, FooterUpdated)
	assert.Equal(t, "2026", sh.Find("#currentyear").Text())
	assert.Equal(t, "Last updated March 4, 2026 at 3:05 PM", sh.Find("#lastModified").Text())

	sh.StampFooter(now, modified, FooterModification)
	assert.Equal(t, "Last Modification: 03/04/2026 15:05:00", sh.Find("#lastModified").Text())
}

func TestSetTextAndAttr(t *testing.T) {
	sh := parse(t)
	assert.True(t, sh.SetText("title", "Members"))
	assert.False(t, sh.SetText("#nope", "x"))
	assert.True(t, sh.SetAttr("#interest", "data-restored", "true"))

	html, err := sh.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Members</title>")
	assert.Contains(t, html, `data-restored="true"`)
	assert.Contains(t, html, "<!DOCTYPE html>")
}
