package domain

import (
	"regexp"
	"strings"
)

// ReservedRoutes are username values that would collide with system paths.
var ReservedRoutes = []string{"dashboard", "signin", "api", "assets", "favicon", "index"}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
)

// ValidateUsername checks format only, not collisions. The returned
// reason is user-facing and empty when the username is valid.
func ValidateUsername(username string) (ok bool, reason string) {
	if len(username) < UsernameMinLen || len(username) > UsernameMaxLen {
		return false, "Username must be 3-30 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "Username can only contain letters, numbers, underscores, and hyphens"
	}
	if IsReservedRoute(username) {
		return false, "Username is reserved"
	}
	return true, ""
}

// IsReservedRoute reports whether username collides with a system path.
// Empty usernames are treated as reserved.
func IsReservedRoute(username string) bool {
	if username == "" {
		return true
	}
	lower := strings.ToLower(username)
	for _, r := range ReservedRoutes {
		if lower == r {
			return true
		}
	}
	return false
}
