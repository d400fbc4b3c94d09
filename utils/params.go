package utils

import "net/http"

// ListingParams are the raw selector values of a listing request.
type ListingParams struct {
	Search string
	Type   string
	Scope  string
}

func ParseListingParams(r *http.Request) ListingParams {
	q := r.URL.Query()
	return ListingParams{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Scope:  q.Get("scope"),
	}
}
