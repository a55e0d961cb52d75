// Package header defines the custom request header names used by the
// API.
package header

const (
	TogglAPIKey = "X-Toggl-Api-Key"
	TogglEmail  = "X-Toggl-Email"
)
