package utils

import (
	"net/http"

	"devhub/globals"
	"devhub/models"
)

// GetViewerFromRequest returns the viewer set by the auth middleware, or nil
// for anonymous requests.
func GetViewerFromRequest(r *http.Request) *models.Viewer {
	v, ok := r.Context().Value(globals.ViewerKey).(*models.Viewer)
	if !ok {
		return nil
	}
	return v
}

func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(globals.RequestIDKey).(string)
	return id
}
