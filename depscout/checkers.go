package depscout

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/depscout/depscout-core/providers/api/ghapi"
	"github.com/depscout/depscout-core/providers/parsers"
	"github.com/depscout/depscout-core/providers/semver"
)

// UpdatesChecker represents checkers interface.
type UpdatesChecker interface {
	// LastUpdates returns the latest tagged version for each recorded dependency.
	LastUpdates(ctx context.Context, deps []parsers.Dependency) ([]Update, error)
}

// Update represents one dependency update report.
type Update struct {
	Name       string `json:"name,omitempty"`
	Repository string `json:"repository"`
	Latest     string `json:"latest"`
	Constraint string `json:"constraint,omitempty"`
	// Compatible reports whether the latest version still satisfies the
	// recorded constraint.
	Compatible bool `json:"compatible"`
}

// tagsAPI is the slice of the REST client the checker depends on.
type tagsAPI interface {
	Tags(ctx context.Context, owner, repo string, opts *ghapi.TagsOptions) ([]ghapi.Tag, *http.Response, error)
}

// NewGitHubUpdatesChecker constructs a checker over the public GitHub REST API.
func NewGitHubUpdatesChecker(httpClient *http.Client) UpdatesChecker {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	api, _ := ghapi.NewClient(httpClient, nil)

	return &GitHubUpdatesChecker{api: api}
}

// GitHubUpdatesChecker reports the latest tagged versions for recorded dependencies.
type GitHubUpdatesChecker struct {
	api tagsAPI
}

// LastUpdates resolves the latest tagged version for every dependency and
// checks it against the recorded constraint. Dependencies that cannot be
// resolved on the remote side are skipped, not failed.
func (uc GitHubUpdatesChecker) LastUpdates(ctx context.Context, deps []parsers.Dependency) ([]Update, error) {
	if len(deps) == 0 {
		return nil, fmt.Errorf("no dependencies provided")
	}

	result := make([]Update, 0, len(deps))

skip_dep:
	for _, dep := range deps {
		ref, err := ParseRepoAddr(dep.Repository)
		if err != nil {
			continue
		}

		var names strings.Builder
		opts := ghapi.TagsOptions{PerPage: 100}
		for {
			tags, _, err := uc.api.Tags(ctx, ref.Owner, ref.Name, &opts)
			if err != nil {
				continue skip_dep
			}
			for _, t := range tags {
				names.WriteString(t.Name)
				names.WriteString("\n")
			}
			if len(tags) < opts.PerPage {
				break
			}
			opts.Page++
		}

		latest, err := semver.Latest(semver.ExtractAll(names.String()))
		if err != nil {
			continue
		}

		update := Update{
			Name:       dep.Name,
			Repository: dep.Repository,
			Latest:     latest.String(),
			Constraint: dep.Constraint,
		}
		if c, err := semver.ParseConstraint(dep.Constraint); err == nil {
			update.Compatible = c.Match(latest)
		}

		result = append(result, update)
	}

	return result, nil
}
