package engine

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	videoIDRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	videoURLRe  = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=|shorts/)([^#&?/]*)`)
)

// ValidateVideoID rejects anything that is not an 11-char YouTube video ID.
func ValidateVideoID(id string) error {
	if !videoIDRe.MatchString(id) {
		return fmt.Errorf("%w: video id %q", ErrInvalidArgument, id)
	}
	return nil
}

// ValidateChannelID rejects anything that is not a UC-prefixed channel ID.
func ValidateChannelID(id string) error {
	if !channelIDRe.MatchString(id) {
		return fmt.Errorf("%w: channel id %q", ErrInvalidArgument, id)
	}
	return nil
}

// ExtractVideoID pulls the video ID out of watch, short, embed and youtu.be URLs.
// A bare ID is returned unchanged. Returns "" when nothing matches.
func ExtractVideoID(s string) string {
	s = strings.TrimSpace(s)
	if videoIDRe.MatchString(s) {
		return s
	}
	m := videoURLRe.FindStringSubmatch(s)
	if len(m) < 2 || !videoIDRe.MatchString(m[1]) {
		return ""
	}
	return m[1]
}

// ExtractChannelID pulls the ID out of a /channel/ URL. A bare ID is returned
// unchanged. Handles (@name) need a search and yield "".
func ExtractChannelID(s string) string {
	s = strings.TrimSpace(s)
	if channelIDRe.MatchString(s) {
		return s
	}
	_, rest, ok := strings.Cut(s, "/channel/")
	if !ok {
		return ""
	}
	rest, _, _ = strings.Cut(rest, "/")
	rest, _, _ = strings.Cut(rest, "?")
	if !channelIDRe.MatchString(rest) {
		return ""
	}
	return rest
}

// UploadsPlaylistID maps a channel ID to its uploads playlist (UC… -> UU…).
func UploadsPlaylistID(channelID string) string {
	if !strings.HasPrefix(channelID, "UC") {
		return ""
	}
	return "UU" + channelID[2:]
}
