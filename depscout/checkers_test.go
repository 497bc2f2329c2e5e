package depscout

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/depscout/depscout-core/providers/api/ghapi"
	"github.com/depscout/depscout-core/providers/parsers"
)

// GhApiMock mocks the tags slice of the REST client.
type GhApiMock struct {
	mock.Mock
}

// Mock Tags method.
func (m *GhApiMock) Tags(ctx context.Context, owner, repo string, opts *ghapi.TagsOptions) ([]ghapi.Tag, *http.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var t []ghapi.Tag
	var r *http.Response
	// To allow nil values
	if mt, ok := args.Get(0).([]ghapi.Tag); ok {
		t = mt
	}
	if resp, ok := args.Get(1).(*http.Response); ok {
		r = resp
	}

	return t, r, args.Error(2)
}

func tagList(names ...string) []ghapi.Tag {
	tags := make([]ghapi.Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, ghapi.Tag{Name: n})
	}
	return tags
}

func TestGitHubUpdatesChecker_NewMethod(t *testing.T) {
	uc := NewGitHubUpdatesChecker(nil)
	assert.True(t, uc.(*GitHubUpdatesChecker).api != nil)
}

func TestGitHubUpdatesChecker_LastUpdatesMethod(t *testing.T) {
	apiMock := new(GhApiMock)
	apiMock.On("Tags", mock.Anything, "test", "testing", mock.Anything).
		Return(tagList("v3.2.0", "v3.4.0", "v3.3.1"), nil, nil)
	apiMock.On("Tags", mock.Anything, "vendor", "old", mock.Anything).
		Return(tagList("2.0.0", "1.4.0"), nil, nil)
	apiMock.On("Tags", mock.Anything, "vendor", "broken", mock.Anything).
		Return(nil, nil, ghapi.ErrNotFound)
	apiMock.On("Tags", mock.Anything, "vendor", "untagged", mock.Anything).
		Return(tagList("main-snapshot"), nil, nil)

	deps := []parsers.Dependency{
		{Name: "Testing", Repository: "test/testing", Constraint: "^3.2.0"},
		{Repository: "vendor/old", Constraint: "^1.0.0"},
		{Repository: "vendor/broken", Constraint: "^1.0.0"},
		{Repository: "vendor/untagged", Constraint: "^1.0.0"},
	}

	expectedUpdates := []Update{
		{Name: "Testing", Repository: "test/testing", Latest: "3.4.0", Constraint: "^3.2.0", Compatible: true},
		{Repository: "vendor/old", Latest: "2.0.0", Constraint: "^1.0.0", Compatible: false},
	}

	uc := GitHubUpdatesChecker{api: apiMock}

	updates, err := uc.LastUpdates(context.TODO(), deps)
	if err != nil {
		t.Fatalf("unexpected error on last updates: %v", err)
	}

	assert.Len(t, updates, 2)
	assert.ElementsMatch(t, expectedUpdates, updates)
	apiMock.AssertExpectations(t)
}

func TestGitHubUpdatesChecker_LastUpdatesMethod_Empty(t *testing.T) {
	apiMock := new(GhApiMock)
	apiMock.AssertNotCalled(t, "Tags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	uc := GitHubUpdatesChecker{api: apiMock}

	updates, err := uc.LastUpdates(context.TODO(), nil)
	if err == nil || err.Error() != "no dependencies provided" {
		t.Error("expected error on empty dependencies, got none")
	}
	assert.Len(t, updates, 0)
	apiMock.AssertExpectations(t)
}

func TestGitHubUpdatesChecker_LastUpdatesMethod_UnparseableConstraint(t *testing.T) {
	apiMock := new(GhApiMock)
	apiMock.On("Tags", mock.Anything, "test", "testing", mock.Anything).
		Return(tagList("1.4.0"), nil, nil)

	uc := GitHubUpdatesChecker{api: apiMock}

	updates, err := uc.LastUpdates(context.TODO(), []parsers.Dependency{
		{Repository: "test/testing", Constraint: ">=1.0.0"},
	})
	if err != nil {
		t.Fatalf("unexpected error on last updates: %v", err)
	}

	assert.Len(t, updates, 1)
	assert.Equal(t, "1.4.0", updates[0].Latest)
	assert.False(t, updates[0].Compatible)
}
