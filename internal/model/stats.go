package model

// Stats carries the aggregate counts the dashboard shows per resource.
// Resources fill only the counters that apply to them.
type Stats struct {
	Total       int `json:"total"`
	Published   int `json:"published,omitempty"`
	Unpublished int `json:"unpublished,omitempty"`
	Draft       int `json:"draft,omitempty"`
	Archived    int `json:"archived,omitempty"`
	Active      int `json:"active,omitempty"`
	Admins      int `json:"admins,omitempty"`
}
