package theme_test

import (
	"testing"

	"github.com/clink-app/clink-backend/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestResolveKnownTheme(t *testing.T) {
	ocean := theme.Resolve("ocean")
	assert.Equal(t, "Deep Ocean", ocean.Name)
	assert.True(t, ocean.Glass)

	light := theme.Resolve("light")
	assert.Equal(t, "Snowfall", light.Name)
	assert.False(t, light.Glass)
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	def := theme.Resolve(theme.DefaultTheme)
	assert.Equal(t, def, theme.Resolve("nonexistent-theme"))
	assert.Equal(t, def, theme.Resolve(""))
}

func TestResolveCustomJSON(t *testing.T) {
	custom := theme.Resolve(`{"custom":true,"name":"Mine","background":"#111","text":"#eee"}`)
	assert.Equal(t, "Mine", custom.Name)
	assert.Equal(t, "#111", custom.Background)

	// Missing custom marker falls through to the default theme.
	def := theme.Resolve(theme.DefaultTheme)
	assert.Equal(t, def, theme.Resolve(`{"name":"Mine"}`))

	// Malformed JSON falls through silently.
	assert.Equal(t, def, theme.Resolve(`{not json`))
}

func TestNamesAndIsKnown(t *testing.T) {
	names := theme.Names()
	assert.Len(t, names, 10)
	assert.True(t, theme.IsKnown("cyberpunk"))
	assert.False(t, theme.IsKnown("neon"))
}
