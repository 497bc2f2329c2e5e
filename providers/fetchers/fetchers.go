/*
Package fetchers provides repository metadata fetchers (raw tag listings and
display titles) for remote and in-memory repositories.

Usage:
	todo:
*/
package fetchers

import (
	"context"
	"errors"
)

var (
	ErrRepoNotFound = errors.New("repository not found")
)

// MetaFetcher interface defines fetchers methods.
//
// TagRefs returns the raw tag listing text of the configured repository, the
// text is meant to be handed to the version extractor as is. Title returns a
// best-effort human readable repository title; an empty string means the
// title could not be determined, which is not an error - titles are optional
// decoration, not required for version selection.
type MetaFetcher interface {
	TagRefs(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

// StaticFetcher serves canned tag text and title from memory (usefull for debugging/testing or for building custom repositories logic)
type StaticFetcher struct {
	Tags      string
	RepoTitle string
	Err       error
}

// TagRefs returns the canned tag listing text.
func (sf StaticFetcher) TagRefs(ctx context.Context) (string, error) {
	if sf.Err != nil {
		return "", sf.Err
	}
	return sf.Tags, nil
}

// Title returns the canned repository title.
func (sf StaticFetcher) Title(ctx context.Context) (string, error) {
	if sf.Err != nil {
		return "", sf.Err
	}
	return sf.RepoTitle, nil
}
