package fetchers

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts external command execution so tests can substitute
// canned output for the git binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run executes the command and captures its stdout.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GitFetcher lists repository tags by shelling out to 'git ls-remote --tags'.
// It works with any git host, not only github, at the cost of having no
// title information.
type GitFetcher struct {
	URL    string
	Runner CommandRunner
}

// NewGitFetcher constructs a GitFetcher for the given clone URL.
func NewGitFetcher(url string) MetaFetcher {
	return &GitFetcher{URL: url, Runner: ExecRunner{}}
}

// TagRefs returns the raw ls-remote output. Each output line is
// '<sha>\trefs/tags/<name>\n', so the text already carries the whitespace
// boundaries the version extractor expects.
func (p GitFetcher) TagRefs(ctx context.Context) (string, error) {
	out, err := p.Runner.Run(ctx, "git", "ls-remote", "--tags", p.URL)
	if err != nil {
		// git exits with 128 when the remote does not resolve.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
			return "", ErrRepoNotFound
		}
		return "", fmt.Errorf("unable to list tags for '%s' via git: %w", p.URL, err)
	}
	return string(out), nil
}

// Title is not resolvable through the git protocol.
func (p GitFetcher) Title(ctx context.Context) (string, error) {
	return "", nil
}
