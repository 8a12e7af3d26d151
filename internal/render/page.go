package render

import (
	"html/template"
	"io"

	"github.com/clink-app/clink-backend/internal/theme"
)

// HTMLRenderer is the server-side adapter over PageView. The view
// model itself stays renderer-agnostic so other adapters (the JSON
// API, the websocket preview feed) can share it.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"css": func(s string) template.CSS { return template.CSS(s) },
	}).Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render writes the public page for a built view model.
func (r *HTMLRenderer) Render(w io.Writer, page PageView) error {
	return r.tmpl.Execute(w, page)
}

// RenderNotFound writes the placeholder page for unknown usernames,
// styled with the default theme.
func (r *HTMLRenderer) RenderNotFound(w io.Writer, username string) error {
	return r.tmpl.Execute(w, PageView{
		Username:    username,
		DisplayName: "@" + username,
		Initials:    "?",
		Theme:       theme.Resolve(theme.DefaultTheme),
		Empty:       true,
		NotFound:    true,
	})
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.DisplayName}} | C-Link</title>
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined">
<style>
  body { margin: 0; font-family: system-ui, sans-serif; min-height: 100vh; background: {{css .Theme.Background}}; color: {{css .Theme.Text}}; }
  .page { max-width: 680px; margin: 0 auto; padding: 48px 16px; }
  .avatar { width: 96px; height: 96px; border-radius: 50%; margin: 0 auto; display: flex; align-items: center; justify-content: center; font-size: 40px; background: {{css .Theme.CardBg}}; border: 1px solid {{css .Theme.CardBorder}}; overflow: hidden; }
  .avatar img { width: 100%; height: 100%; object-fit: cover; }
  h1 { text-align: center; font-size: 22px; margin: 16px 0 4px; }
  .bio { text-align: center; color: {{css .Theme.Subtext}}; margin: 0 0 32px; }
  .link-card { display: flex; align-items: center; gap: 12px; padding: 14px 16px; margin-bottom: 12px; border-radius: 14px; text-decoration: none; color: inherit; background: {{css .Theme.CardBg}}; border: 1px solid {{css .Theme.CardBorder}}; {{if .Theme.Glass}}backdrop-filter: blur(16px);{{end}} }
  .link-icon { width: 40px; height: 40px; border-radius: 10px; display: flex; align-items: center; justify-content: center; }
  .link-icon img { width: 24px; height: 24px; border-radius: 4px; }
  .link-title { font-weight: 600; }
  .link-url { font-size: 13px; color: {{css .Theme.Subtext}}; }
  .empty { text-align: center; color: {{css .Theme.Subtext}}; padding: 48px 0; }
</style>
</head>
<body>
<div class="page" id="profile-page">
  <div class="avatar">
    {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.DisplayName}}">{{else}}<span class="initial">{{.Initials}}</span>{{end}}
  </div>
  <h1 id="display-name">{{.DisplayName}}</h1>
  {{if .Bio}}<p class="bio" id="bio">{{.Bio}}</p>{{end}}
  <div id="links-list">
  {{if .NotFound}}
    <div class="empty">This page doesn't exist yet.</div>
  {{else if .Empty}}
    <div class="empty">No links yet</div>
  {{else}}
    {{range .Links}}
    <a class="link-card" href="{{.URL}}" rel="noopener" style="animation-delay: {{.AnimationDelay}}s">
      <span class="link-icon" style="color: {{css .IconColor}}">
        {{if eq .Thumbnail "image"}}<img src="{{.ImageURL}}" alt="" onerror="this.outerHTML='<span class=&quot;material-symbols-outlined&quot;>{{.FallbackGlyph}}</span>'">{{else}}<span class="material-symbols-outlined">{{.Icon}}</span>{{end}}
      </span>
      <span>
        <span class="link-title">{{.Title}}</span><br>
        <span class="link-url">{{.Domain}}</span>
      </span>
    </a>
    {{end}}
  {{end}}
  </div>
</div>
</body>
</html>
`
