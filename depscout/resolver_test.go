package depscout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscout/depscout-core/providers/fetchers"
	"github.com/depscout/depscout-core/providers/semver"
)

// fakeFetcher allows configuring tag and title lookups independently.
type fakeFetcher struct {
	tags     string
	tagsErr  error
	title    string
	titleErr error
}

func (ff fakeFetcher) TagRefs(ctx context.Context) (string, error) {
	return ff.tags, ff.tagsErr
}

func (ff fakeFetcher) Title(ctx context.Context) (string, error) {
	return ff.title, ff.titleErr
}

// withFetcher builds a resolver that serves every repository from the given fetcher.
func withFetcher(f fetchers.MetaFetcher) Resolver {
	return Resolver{fetcherFor: func(ref RepoRef) fetchers.MetaFetcher { return f }}
}

func TestResolverNewMethod(t *testing.T) {
	r := NewResolver(nil)
	assert.NotNil(t, r.(*Resolver).fetcherFor)
}

func TestResolveMethod(t *testing.T) {
	r := withFetcher(fakeFetcher{
		tags:  "refs/tags/1.2.3 \nrefs/tags/1.10.0 \nrefs/tags/1.9.5 \n",
		title: "Handy helpers for testing",
	})

	res, err := r.Resolve(context.Background(), "test/testing")
	require.NoError(t, err)

	assert.Equal(t, "test/testing", res.Repository)
	assert.Equal(t, "1.10.0", res.Version.String())
	assert.Equal(t, "^1.10.0", res.Constraint)
	assert.Equal(t, "Handy helpers for testing", res.Title)
}

func TestResolveMethod_PreReleaseBoundary(t *testing.T) {
	r := withFetcher(fakeFetcher{tags: "refs/tags/0.3.5 \n"})

	res, err := r.Resolve(context.Background(), "test/testing")
	require.NoError(t, err)

	assert.Equal(t, "0.3.5", res.Version.String())
	assert.Equal(t, "~0.3.5", res.Constraint)
}

func TestResolveMethod_NoVersions(t *testing.T) {
	r := withFetcher(fakeFetcher{tags: "ref: refs/heads/main"})

	res, err := r.Resolve(context.Background(), "test/testing")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, semver.ErrNoVersions))
}

func TestResolveMethod_FetcherErrorPropagated(t *testing.T) {
	r := withFetcher(fakeFetcher{tagsErr: fetchers.ErrRepoNotFound})

	res, err := r.Resolve(context.Background(), "test/testing")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, fetchers.ErrRepoNotFound))
}

// A failing title lookup never blocks resolution.
func TestResolveMethod_TitleFailureIgnored(t *testing.T) {
	r := withFetcher(fakeFetcher{
		tags:     "refs/tags/1.0.0 \n",
		titleErr: errors.New("the decoration service is down"),
	})

	res, err := r.Resolve(context.Background(), "test/testing")
	require.NoError(t, err)

	assert.Equal(t, "", res.Title)
	assert.Equal(t, "^1.0.0", res.Constraint)
}

func TestResolveMethod_BadAddress(t *testing.T) {
	r := withFetcher(fakeFetcher{tags: "refs/tags/1.0.0 \n"})

	res, err := r.Resolve(context.Background(), "https://gitlab.com/vendor/reponame.git")
	assert.Nil(t, res)
	assert.Error(t, err)
}
