package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/hgroves/togglcon/app/header"
)

func RequireTogglCredentials(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		togglAPIKey := r.Header.Get(header.TogglAPIKey)
		togglEmail := r.Header.Get(header.TogglEmail)

		if togglAPIKey == "" || togglEmail == "" {
			http.Error(w,
				"The Toggl API key and account email need to be supplied in the request headers.",
				http.StatusUnauthorized)
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), authKey,
			&TogglCredentials{APIKey: togglAPIKey, Email: togglEmail},
		))

		f(w, r)
	}
}

func GetTogglCredentials(c context.Context) (*TogglCredentials, error) {
	credentials, ok := c.Value(authKey).(*TogglCredentials)
	if !ok {
		return nil, errors.New("Toggl credentials not found")
	}
	return credentials, nil
}

type TogglCredentials struct {
	APIKey string
	Email  string
}

type key struct{}

var authKey = key{}
