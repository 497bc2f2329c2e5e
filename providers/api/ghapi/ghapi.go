/*
Package ghapi provides a thin client for the GitHub public REST API.

Usage:
	todo:
*/
package ghapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// githubHostname - GitHub REST API hostname (used as default API).
//
// The api.github.com endpoints used here are unauthenticated and rate limited
// by source address; pass a signed http.Client for increased limits.
var githubHostname string = "https://api.github.com"

var (
	// ErrNotFound is returned when the requested repository does not exist.
	ErrNotFound = errors.New("github resource not found")
)

// Client is used to send API requests to the code hosting service.
type Client struct {
	baseURL    url.URL
	HttpClient *http.Client
}

// NewClient creates and returns a new client.
//
// If a nil URL is provided, default client is configured for the public
// GitHub REST API (api.github.com).
func NewClient(httpClient *http.Client, URL *url.URL) (*Client, error) {
	// Generate api.github.com default client if no URL provided.
	if URL == nil {
		var err error
		if URL, err = url.Parse(githubHostname); err != nil {
			return nil, err
		}
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: *URL, HttpClient: httpClient}, nil
}

// Tag represents one repository tag.
type Tag struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
		URL string `json:"url"`
	} `json:"commit"`
}

// TagsOptions specifies the optional pagination parameters to Tags() method.
type TagsOptions struct {
	// PerPage is used to define the pagination step.
	PerPage int `url:"per_page,omitempty"`
	// Page is used to define page.
	Page int `url:"page,omitempty"`
}

// Tags method lists tags for the specified repository, most recently created first.
func (c Client) Tags(ctx context.Context, owner, repo string, opts *TagsOptions) ([]Tag, *http.Response, error) {
	if owner == "" || repo == "" {
		return nil, nil, fmt.Errorf("'owner' and 'repo' options are required for tags request")
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing the options: %w", err)
	}

	route := fmt.Sprintf("%s/repos/%s/%s/tags?%s", &c.baseURL, owner, repo, v.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	var tags []Tag
	var r *http.Response
	if r, err = parseResponse(&c, req, &tags); err != nil {
		return nil, nil, err
	}

	return tags, r, nil
}

// Repository represents basic repository metadata.
type Repository struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Homepage    string `json:"homepage"`
	Stars       int    `json:"stargazers_count"`
	Archived    bool   `json:"archived"`
}

// Repo method fetches metadata for the specified repository.
func (c Client) Repo(ctx context.Context, owner, repo string) (*Repository, *http.Response, error) {
	if owner == "" || repo == "" {
		return nil, nil, fmt.Errorf("'owner' and 'repo' options are required for repo request")
	}

	route := fmt.Sprintf("%s/repos/%s/%s", &c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	var rep Repository
	var r *http.Response
	if r, err = parseResponse(&c, req, &rep); err != nil {
		return nil, nil, err
	}

	return &rep, r, nil
}

// errorResponse represents a github api error response.
type errorResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// parseResponse is used to execute the request and unmarshall the response to dt.
func parseResponse(c *Client, req *http.Request, dt interface{}) (r *http.Response, err error) {
	if r, err = c.HttpClient.Do(req); err != nil {
		return nil, fmt.Errorf("unable to send a request: %w", err)
	}
	defer r.Body.Close()

	if r.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	if r.StatusCode >= 400 {
		// Handling error responses from the github api
		var ersp errorResponse
		if perr := json.Unmarshal(body, &ersp); perr == nil && ersp.Message != "" {
			return nil, fmt.Errorf("github api responded with error '%s'", ersp.Message)
		}
		return nil, fmt.Errorf("github responded with HTTP error '%d: %s'", r.StatusCode, http.StatusText(r.StatusCode))
	}

	if err = json.Unmarshal(body, &dt); err != nil {
		return nil, fmt.Errorf("unable to parse response: %w", err)
	}

	return r, nil
}
