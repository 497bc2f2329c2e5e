package depscout

import (
	"context"
	"net/http"

	"github.com/depscout/depscout-core/providers/fetchers"
	"github.com/depscout/depscout-core/providers/semver"
)

// DependencyResolver resolves a repository address into the latest tagged
// version and the recommended update constraint to record for it.
type DependencyResolver interface {
	Resolve(ctx context.Context, addr string) (*Resolved, error)
}

// Resolved represents one resolved dependency recommendation.
type Resolved struct {
	// Title is the best-effort display title of the repository ('' when unknown).
	Title string
	// Repository is the 'owner/name' identifier.
	Repository string
	// Version is the highest version found among the repository tags.
	Version semver.Version
	// Constraint is the update range recommended for Version.
	Constraint string
}

// NewResolver constructs a resolver backed by the GitHub metadata fetcher.
//
// You can pass a specific signed httpClient with any information you want the
// requests go with, for example OAuth2/BasicAuth information for increased
// rate limits and so on.
func NewResolver(httpClient *http.Client) DependencyResolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Resolver{
		fetcherFor: func(ref RepoRef) fetchers.MetaFetcher {
			return fetchers.NewGitHubFetcher(httpClient, ref.Owner, ref.Name)
		},
	}
}

// Resolver represents the default DependencyResolver implementation.
type Resolver struct {
	// fetcherFor builds the metadata fetcher for a parsed repository reference.
	fetcherFor func(RepoRef) fetchers.MetaFetcher
}

// Resolve fetches the raw tag listing, extracts every version triple from it,
// selects the maximum and derives the constraint to record.
//
// A repository without a single parseable tag surfaces semver.ErrNoVersions;
// fetcher failures are propagated unchanged. A failed title lookup does not
// block resolution, titles are optional decoration.
func (r Resolver) Resolve(ctx context.Context, addr string) (*Resolved, error) {
	ref, err := ParseRepoAddr(addr)
	if err != nil {
		return nil, err
	}

	fetcher := r.fetcherFor(*ref)

	raw, err := fetcher.TagRefs(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := semver.Latest(semver.ExtractAll(raw))
	if err != nil {
		return nil, err
	}

	title, err := fetcher.Title(ctx)
	if err != nil {
		title = ""
	}

	return &Resolved{
		Title:      title,
		Repository: ref.String(),
		Version:    latest,
		Constraint: semver.RecommendedConstraint(latest),
	}, nil
}
