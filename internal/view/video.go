package view

import "strings"

const watchMarker = "watch?v="

// EmbedURL turns a "…/watch?v=ID" video link into its "…/embed/ID" player
// form with autoplay enabled. Links without the watch marker come back as is.
func EmbedURL(u string) string {
	if !strings.Contains(u, watchMarker) {
		return u
	}
	embed := strings.Replace(u, watchMarker, "embed/", 1)
	if strings.Contains(embed, "?") {
		return embed + "&autoplay=1"
	}
	return embed + "?autoplay=1"
}
