// Package platform maps link URLs to display icons by hostname
// substring matching against a fixed registry.
package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// Icon is a glyph name (material symbol) plus a brand color.
type Icon struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultIcon is returned for unparseable URLs and unknown hosts.
var DefaultIcon = Icon{Icon: "link", Color: "#6b7280"}

type entry struct {
	substring string
	icon      Icon
}

// Matching is substring containment against the lowercased hostname;
// when several entries could match, the first one listed wins.
var registry = []entry{
	{"github", Icon{"code", "#24292e"}},
	{"twitter", Icon{"tag", "#1da1f2"}},
	{"x.com", Icon{"tag", "#000000"}},
	{"instagram", Icon{"photo_camera", "#e4405f"}},
	{"youtube", Icon{"play_circle", "#ff0000"}},
	{"linkedin", Icon{"work", "#0a66c2"}},
	{"tiktok", Icon{"music_note", "#000000"}},
	{"discord", Icon{"chat", "#5865f2"}},
	{"twitch", Icon{"sports_esports", "#9146ff"}},
	{"reddit", Icon{"forum", "#ff4500"}},
	{"medium", Icon{"article", "#000000"}},
	{"codepen", Icon{"code", "#1a1a1a"}},
	{"dribbble", Icon{"palette", "#ea4c89"}},
	{"behance", Icon{"palette", "#1769ff"}},
	{"snapchat", Icon{"chat", "#fffc00"}},
	{"whatsapp", Icon{"chat", "#25d366"}},
	{"telegram", Icon{"send", "#0088cc"}},
	{"email", Icon{"email", "#ea4335"}},
	{"website", Icon{"language", "#4285f4"}},
	{"spotify", Icon{"music_note", "#1db954"}},
	{"soundcloud", Icon{"music_note", "#ff5500"}},
	{"bandcamp", Icon{"music_note", "#629aa9"}},
	{"figma", Icon{"design_services", "#f24e1e"}},
	{"deviantart", Icon{"palette", "#05cc47"}},
	{"artstation", Icon{"palette", "#13aff0"}},
	{"stackoverflow", Icon{"help", "#f48024"}},
	{"npm", Icon{"inventory_2", "#cb3837"}},
	{"docker", Icon{"inventory_2", "#2496ed"}},
	{"aws", Icon{"cloud", "#ff9900"}},
	{"vercel", Icon{"rocket_launch", "#000000"}},
	{"netlify", Icon{"cloud", "#00dc7d"}},
	{"heroku", Icon{"cloud", "#430098"}},
	{"paypal", Icon{"payments", "#003087"}},
	{"patreon", Icon{"favorite", "#ff424d"}},
	{"ko-fi", Icon{"coffee", "#ff5e5b"}},
	{"buymeacoffee", Icon{"coffee", "#fd0"}},
	{"slack", Icon{"chat", "#4a154b"}},
	{"teams", Icon{"chat", "#6264a7"}},
	{"zoom", Icon{"videocam", "#2d8cff"}},
	{"skype", Icon{"chat", "#00aff0"}},
	{"messenger", Icon{"chat", "#0084ff"}},
	{"wechat", Icon{"chat", "#07c160"}},
	{"line", Icon{"chat", "#06c755"}},
	{"viber", Icon{"chat", "#7360f2"}},
}

// Domain extracts the hostname from a raw URL, stripping a leading
// "www.". A missing scheme is assumed to be https. Unparseable input
// is returned as-is.
func Domain(rawURL string) string {
	u, err := parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// FaviconURL returns a third-party favicon image URL for the link's
// domain.
func FaviconURL(rawURL string) string {
	domain := Domain(rawURL)
	if domain == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", url.QueryEscape(domain))
}

// ResolveIcon returns the platform icon for a URL: the first registry
// entry whose key is contained in the lowercased hostname, or
// DefaultIcon when nothing matches or the URL cannot be parsed.
func ResolveIcon(rawURL string) Icon {
	u, err := parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return DefaultIcon
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	for _, e := range registry {
		if strings.Contains(host, e.substring) {
			return e.icon
		}
	}
	return DefaultIcon
}

// IsValidURL reports whether rawURL parses once a scheme is assumed.
func IsValidURL(rawURL string) bool {
	u, err := parse(rawURL)
	return err == nil && u.Hostname() != ""
}

func parse(rawURL string) (*url.URL, error) {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}
	return url.Parse(rawURL)
}
