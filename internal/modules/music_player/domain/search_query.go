package domain

import (
	"strings"
)

// SearchSource represents the source for searching tracks.
type SearchSource string

const (
	// SourceYouTube searches YouTube.
	SourceYouTube SearchSource = "ytsearch"
	// SourceDirect indicates a direct URL (no search prefix).
	SourceDirect SearchSource = ""
)

// SearchQuery represents a query for searching tracks.
type SearchQuery struct {
	Query  string       // The search term or URL
	Source SearchSource // The search source
}

// NewSearchQuery creates a SearchQuery from user input.
// URLs are passed through; anything else searches YouTube.
func NewSearchQuery(input string) SearchQuery {
	input = strings.TrimSpace(input)

	if isURL(input) {
		if strings.HasPrefix(input, "www.") {
			input = "https://" + input
		}
		return SearchQuery{Query: input, Source: SourceDirect}
	}

	return SearchQuery{Query: input, Source: SourceYouTube}
}

// IsURL reports whether the query is a direct link.
func (q SearchQuery) IsURL() bool {
	return q.Source == SourceDirect
}

// LavalinkQuery returns the query string formatted for Lavalink.
func (q SearchQuery) LavalinkQuery() string {
	if q.IsURL() {
		return q.Query
	}
	return string(q.Source) + ":" + q.Query
}

// IsValid returns true if the query is not empty.
func (q SearchQuery) IsValid() bool {
	return q.Query != ""
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "www.")
}
