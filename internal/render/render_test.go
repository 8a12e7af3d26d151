package render_test

import (
	"bytes"
	"testing"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/render"
	"github.com/clink-app/clink-backend/internal/theme"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *domain.UserProfile {
	bio := "I make things"
	custom := "https://cdn.example.com/thumb.png"
	return &domain.UserProfile{
		ID:          uuid.New(),
		Username:    "alice",
		DisplayName: "Alice",
		Bio:         &bio,
		Theme:       "ocean",
		Links: []domain.Link{
			{Title: "Code", URL: "https://github.com/alice", Order: 0, IsActive: true, ThumbnailType: domain.ThumbnailFavicon},
			{Title: "Hidden", URL: "https://example.com", Order: 1, IsActive: false},
			{Title: "Shop", URL: "shop.example.com", Order: 2, IsActive: true, ThumbnailType: domain.ThumbnailCustom, ThumbnailURL: &custom},
			{Title: "Videos", URL: "https://youtube.com/@alice", Order: 3, IsActive: true, ThumbnailType: domain.ThumbnailPlatform},
		},
	}
}

func TestBuildPage(t *testing.T) {
	page := render.BuildPage(sampleProfile())

	assert.Equal(t, "Alice", page.DisplayName)
	assert.Equal(t, "A", page.Initials)
	assert.Equal(t, "I make things", page.Bio)
	assert.Equal(t, theme.Resolve("ocean"), page.Theme)
	assert.False(t, page.Empty)

	// Inactive links are skipped, order preserved.
	require.Len(t, page.Links, 3)
	assert.Equal(t, []string{"Code", "Shop", "Videos"}, []string{page.Links[0].Title, page.Links[1].Title, page.Links[2].Title})

	favicon := page.Links[0]
	assert.Equal(t, render.ThumbImage, favicon.Thumbnail)
	assert.Contains(t, favicon.ImageURL, "favicons")
	assert.Equal(t, "code", favicon.FallbackGlyph)
	assert.Equal(t, "github.com", favicon.Domain)

	custom := page.Links[1]
	assert.Equal(t, render.ThumbImage, custom.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/thumb.png", custom.ImageURL)
	assert.Equal(t, "image", custom.FallbackGlyph)

	glyph := page.Links[2]
	assert.Equal(t, render.ThumbGlyph, glyph.Thumbnail)
	assert.Equal(t, "play_circle", glyph.Icon)
	assert.Equal(t, "#ff0000", glyph.IconColor)
	assert.InDelta(t, 0.2, glyph.AnimationDelay, 0.001)
}

func TestBuildPageSortsByOrder(t *testing.T) {
	p := &domain.UserProfile{
		Username: "bob",
		Links: []domain.Link{
			{Title: "B", URL: "b.com", Order: 1, IsActive: true},
			{Title: "A", URL: "a.com", Order: 0, IsActive: true},
		},
	}
	page := render.BuildPage(p)
	require.Len(t, page.Links, 2)
	assert.Equal(t, "A", page.Links[0].Title)
	assert.Equal(t, "B", page.Links[1].Title)
}

func TestBuildPageEmptyAndDefaults(t *testing.T) {
	p := &domain.UserProfile{Username: "bob", Theme: "nonexistent-theme"}
	page := render.BuildPage(p)

	assert.True(t, page.Empty)
	assert.Equal(t, "@bob", page.DisplayName)
	assert.Equal(t, "B", page.Initials)
	assert.Equal(t, theme.Resolve(theme.DefaultTheme), page.Theme)
}

func TestHTMLRenderer(t *testing.T) {
	r, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, render.BuildPage(sampleProfile())))
	out := buf.String()
	assert.Contains(t, out, "Alice | C-Link")
	assert.Contains(t, out, "github.com")
	assert.Contains(t, out, "linear-gradient(180deg, #0c1929 0%, #1a365d 100%)")

	buf.Reset()
	require.NoError(t, r.RenderNotFound(&buf, "nobody"))
	assert.Contains(t, buf.String(), "exist yet")
}

func TestLinkCountLabel(t *testing.T) {
	assert.Equal(t, "No links yet", render.LinkCountLabel(0))
	assert.Equal(t, "1 link", render.LinkCountLabel(1))
	assert.Equal(t, "5 links", render.LinkCountLabel(5))
}

func TestDescription(t *testing.T) {
	p := sampleProfile()
	assert.Equal(t, "Alice - I make things | 4 links on C-Link", render.Description(p))
}
