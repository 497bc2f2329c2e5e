/*
Package depscout provides convinient api for resolving the latest tagged
version of a remote repository and the update constraint to record for it.

Usage:
	todo:
*/
package depscout

import (
	"fmt"
	"regexp"
	"strings"
)

// gitRepoRgx is used to parse repository info from GIT-compatible address string.
//
// Examples matching the regexp:
//     'git@myhostname:vendor/reponame.git'
//     'https://myhostname/vendor/reponame.git' and so on...
// Groups:
//     1: protocol (e.g. 'https://' or 'git@')
//     6: hostname (e.g. 'github.com')
//     8: full repo name (e.g. 'vendor/reponame')
var gitRepoRgx string = `^(((git@)|(git:|ssh:|(http[s]?:\/\/))))([\w\.@\\-~]+)(:|\/)([\w\.@\:\/\-~]+)(\.git)(\/-)?`

// shorthandRgx matches the bare 'owner/name' repository notation.
var shorthandRgx string = `^([\w\.\-~]+)\/([\w\.\-~]+)$`

var (
	gitRepoRgxCompiled   *regexp.Regexp
	shorthandRgxCompiled *regexp.Regexp
)

func init() {
	gitRepoRgxCompiled = regexp.MustCompile(gitRepoRgx)
	shorthandRgxCompiled = regexp.MustCompile(shorthandRgx)
}

// supGitSrcs - supported git sources.
var supGitSrcs = []string{"github.com"}

// defaultGitSrc resolves 'owner/name' shorthand addresses.
var defaultGitSrc = "github.com"

// RepoRef represents basic repository information.
type RepoRef struct {
	Host  string
	Owner string
	Name  string
}

// String renders the 'owner/name' repository identifier.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// CloneURL renders the https clone address of the repository.
func (r RepoRef) CloneURL() string {
	return fmt.Sprintf("https://%s/%s/%s.git", r.Host, r.Owner, r.Name)
}

// ParseRepoAddr - helper to parse repository information from an address string.
//
// Both full git addresses (e.g. 'git@github.com:vendor/reponame.git') and the
// 'owner/name' shorthand are accepted; the shorthand resolves against github.com.
func ParseRepoAddr(addr string) (*RepoRef, error) {
	if matches := shorthandRgxCompiled.FindStringSubmatch(addr); matches != nil {
		return &RepoRef{Host: defaultGitSrc, Owner: matches[1], Name: matches[2]}, nil
	}

	matches := gitRepoRgxCompiled.FindStringSubmatch(addr)
	if matches == nil || matches[6] == "" || matches[8] == "" {
		return nil, fmt.Errorf("unsupported git repository format %q", addr)
	}
	hostName, repoName := matches[6], matches[8]

	if !gitHostSupported(hostName) {
		return nil, fmt.Errorf("git source %q is not supported", hostName)
	}

	if !strings.Contains(repoName, "/") {
		return nil, fmt.Errorf("unable to parse owner from name %q", repoName)
	}
	repoNameParts := strings.Split(repoName, "/")

	return &RepoRef{Host: hostName, Owner: repoNameParts[0], Name: repoNameParts[1]}, nil
}

// gitHostSupported - helper to check git source support status
func gitHostSupported(host string) bool {
	for _, v := range supGitSrcs {
		if v == host {
			return true
		}
	}
	return false
}
