// Package toggl provides a thin Toggl JSON API client
// that only fetches the necessary information to build timesheets.
package toggl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type Client struct {
	apiKey      string
	userAgent   string
	workspaceID int

	httpClient *http.Client

	reportsURL    string
	workspacesURL string
}

const (
	defaultReportsURL    = "https://api.track.toggl.com/reports/api/v2"
	defaultWorkspacesURL = "https://api.track.toggl.com/api/v9"
)

func New(apiKey, userAgent string, workspaceID int) *Client {
	return &Client{
		apiKey:      apiKey,
		userAgent:   userAgent,
		workspaceID: workspaceID,

		httpClient: http.DefaultClient,

		reportsURL:    defaultReportsURL,
		workspacesURL: defaultWorkspacesURL,
	}
}

var ErrInvalidCredentials = errors.New("The provided Toggl API key is invalid.")

// The Toggl API uses the literal string "api_token" as the basic-auth
// password when authenticating with an API token.
func (c *Client) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.apiKey, "api_token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("Toggl request failed with status %d", resp.StatusCode)
	}

	return resp, nil
}

// Entry is one tracked time interval from the detailed report.
// Project is a pointer because the API reports entries without an
// assigned project as null, which callers must treat differently
// from an empty name.
type Entry struct {
	Project     *string  `json:"project"`
	Client      string   `json:"client"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Dur         int64    `json:"dur"`
}

type detailedReportResponse struct {
	Data  []Entry   `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DetailedReport calls GET {reports}/details for the date range
// [since, until], both in YYYY-MM-DD form. Credential failures
// reported through the error envelope surface as
// [ErrInvalidCredentials], never as an empty entry list.
func (c *Client) DetailedReport(since, until string) ([]Entry, error) {
	params := url.Values{}
	params.Set("user_agent", c.userAgent)
	params.Set("workspace_id", strconv.Itoa(c.workspaceID))
	params.Set("since", since)
	params.Set("until", until)

	resp, err := c.get(fmt.Sprintf("%s/details?%s", c.reportsURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var report detailedReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, err
	}

	if report.Error != nil {
		if report.Error.Code == http.StatusUnauthorized || report.Error.Code == http.StatusForbidden {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Toggl request failed: %s", report.Error.Message)
	}

	return report.Data, nil
}

type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Workspaces calls GET {api}/workspaces and returns the workspaces
// the token's user belongs to.
func (c *Client) Workspaces() ([]Workspace, error) {
	resp, err := c.get(fmt.Sprintf("%s/workspaces", c.workspacesURL))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var workspaces []Workspace
	if err := json.NewDecoder(resp.Body).Decode(&workspaces); err != nil {
		return nil, err
	}

	return workspaces, nil
}
