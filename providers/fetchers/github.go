package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v33/github"
)

// GitHubFetcher fetches tag and title metadata from the specified repository.
// Owner and Repo represent '{owner}/{repo}' notation.
// httpClient can be used as OAuth2 or BasicAuth http transport.
type GitHubFetcher struct {
	Owner        string
	Repo         string
	githubClient *github.Client
}

// NewGitHubFetcher constructs GitHubFetcher with specified parameters.
// httpClient can be used as OAuth2 or BasicAuth http transport.
func NewGitHubFetcher(httpClient *http.Client, owner, repo string) MetaFetcher {
	return &GitHubFetcher{
		Owner:        owner,
		Repo:         repo,
		githubClient: github.NewClient(httpClient),
	}
}

// TagRefs lists every tag of the configured repository and joins the tag
// names into newline terminated text. The trailing newline after the last
// tag keeps it inside the whitespace boundary the version extractor expects.
func (p GitHubFetcher) TagRefs(ctx context.Context) (string, error) {
	opts := github.ListOptions{PerPage: 100}
	var refs strings.Builder

	for {
		tags, resp, err := p.githubClient.Repositories.ListTags(ctx, p.Owner, p.Repo, &opts)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return "", ErrRepoNotFound
			}
			return "", fmt.Errorf("unable to list tags for '%s/%s' from github: %w", p.Owner, p.Repo, err)
		}

		for _, t := range tags {
			refs.WriteString(t.GetName())
			refs.WriteString("\n")
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return refs.String(), nil
}

// Title fetches the repository record and returns its description, falling
// back to the bare repository name when no description is set.
func (p GitHubFetcher) Title(ctx context.Context) (string, error) {
	rep, resp, err := p.githubClient.Repositories.Get(ctx, p.Owner, p.Repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", ErrRepoNotFound
		}
		return "", fmt.Errorf("unable to load '%s/%s' repository from github: %w", p.Owner, p.Repo, err)
	}

	if rep.GetDescription() != "" {
		return rep.GetDescription(), nil
	}
	return rep.GetName(), nil
}
