// Package chat implements the boundary to the chat platform: handle
// canonicalization and room naming conventions. Message delivery itself stays
// with the bot host.
package chat

import (
	"fmt"
	"strings"
)

// Resolver canonicalizes free-text handles to the form the chat platform
// stores them in: "@name".
type Resolver struct{}

// NewResolver creates a handle resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve turns a raw handle into a canonical identity. A leading "@" is
// optional in the input; anything containing whitespace or reserved
// characters is rejected.
func (r *Resolver) Resolve(handle string) (string, error) {
	h := strings.TrimSpace(handle)
	h = strings.TrimPrefix(h, "@")
	if h == "" || strings.ContainsAny(h, " \t\n@#") {
		return "", fmt.Errorf("could not build a valid chat identifier from %q", handle)
	}
	return "@" + h, nil
}

// NormalizeRoom ensures the leading "#" on a room name. Some chat backends
// swallow the prefix on the way in.
func NormalizeRoom(room string) string {
	if room == "" || strings.HasPrefix(room, "#") {
		return room
	}
	return "#" + room
}
