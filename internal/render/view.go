// Package render turns a profile snapshot into a serializable view
// model. It never mutates the profile and never touches the store; the
// HTML adapter in page.go is one consumer, the websocket preview feed
// is another.
package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/platform"
	"github.com/clink-app/clink-backend/internal/theme"
)

// Thumbnail kinds for LinkView. "image" carries an ImageURL to try
// first with the glyph as the load-failure fallback; "glyph" renders
// the icon glyph only.
const (
	ThumbImage = "image"
	ThumbGlyph = "glyph"
)

// LinkView is one rendered link entry.
type LinkView struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Domain        string `json:"domain"`
	Icon          string `json:"icon"`
	IconColor     string `json:"iconColor"`
	Thumbnail     string `json:"thumbnail"`
	ImageURL      string `json:"imageUrl,omitempty"`
	FallbackGlyph string `json:"fallbackGlyph,omitempty"`
	// AnimationDelay staggers link entrance, in seconds.
	AnimationDelay float64 `json:"animationDelay"`
}

// PageView is the full public page: profile chrome plus rendered links.
type PageView struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"displayName"`
	Initials    string      `json:"initials"`
	Bio         string      `json:"bio,omitempty"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	Theme       theme.Theme `json:"theme"`
	Links       []LinkView  `json:"links"`
	Empty       bool        `json:"empty"`
	NotFound    bool        `json:"notFound,omitempty"`
}

// BuildPage produces the view model for a profile: active links in
// order, icons resolved, theme applied. An empty active-link list sets
// Empty so adapters can show the "no links" placeholder.
func BuildPage(profile *domain.UserProfile) PageView {
	page := PageView{
		Username:    profile.Username,
		DisplayName: displayName(profile),
		Initials:    initials(displayNameOr(profile)),
		Theme:       theme.Resolve(profile.Theme),
	}
	if profile.Bio != nil {
		page.Bio = *profile.Bio
	}
	if profile.AvatarURL != nil {
		page.AvatarURL = *profile.AvatarURL
	}

	active := make([]domain.Link, 0, len(profile.Links))
	for _, l := range profile.Links {
		if l.IsActive {
			active = append(active, l)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Order < active[j].Order })

	page.Links = make([]LinkView, 0, len(active))
	for i, l := range active {
		page.Links = append(page.Links, buildLink(l, i))
	}
	page.Empty = len(page.Links) == 0
	return page
}

func buildLink(l domain.Link, index int) LinkView {
	icon := platform.ResolveIcon(l.URL)
	view := LinkView{
		Title:          l.Title,
		URL:            l.URL,
		Domain:         platform.Domain(l.URL),
		Icon:           icon.Icon,
		IconColor:      icon.Color,
		AnimationDelay: float64(index) * 0.1,
	}

	switch l.ThumbnailType {
	case domain.ThumbnailFavicon, "":
		if favicon := platform.FaviconURL(l.URL); favicon != "" {
			view.Thumbnail = ThumbImage
			view.ImageURL = favicon
			view.FallbackGlyph = icon.Icon
		} else {
			view.Thumbnail = ThumbGlyph
		}
	case domain.ThumbnailCustom:
		if l.ThumbnailURL != nil && *l.ThumbnailURL != "" {
			view.Thumbnail = ThumbImage
			view.ImageURL = *l.ThumbnailURL
			view.FallbackGlyph = "image"
		} else {
			view.Thumbnail = ThumbGlyph
		}
	default:
		// platform, preview, and anything unknown render the glyph.
		view.Thumbnail = ThumbGlyph
	}
	return view
}

func displayName(profile *domain.UserProfile) string {
	if profile.DisplayName != "" {
		return profile.DisplayName
	}
	username := profile.Username
	if username == "" {
		username = "user"
	}
	return "@" + username
}

func displayNameOr(profile *domain.UserProfile) string {
	if profile.DisplayName != "" {
		return profile.DisplayName
	}
	if profile.Username != "" {
		return profile.Username
	}
	return "?"
}

func initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// LinkCountLabel formats the profile's link count for page metadata.
func LinkCountLabel(count int) string {
	switch count {
	case 0:
		return "No links yet"
	case 1:
		return "1 link"
	default:
		return strconv.Itoa(count) + " links"
	}
}

// Description builds the page's meta description.
func Description(profile *domain.UserProfile) string {
	name := profile.DisplayName
	if name == "" {
		name = profile.Username
	}
	bioPart := ""
	if profile.Bio != nil && *profile.Bio != "" {
		bioPart = " - " + *profile.Bio
	}
	return name + bioPart + " | " + strconv.Itoa(len(profile.Links)) + " links on C-Link"
}
