package depscout

import (
	"testing"
)

func TestParseRepoAddr(t *testing.T) {
	// Table test cases
	cases := []struct {
		TestName string
		Addr     string
		Owner    string
		Name     string
	}{
		{"shorthand", "test/testing", "test", "testing"},
		{"https address", "https://github.com/vendor/reponame.git", "vendor", "reponame"},
		{"ssh address", "git@github.com:vendor/reponame.git", "vendor", "reponame"},
		{"dotted shorthand", "vendor/tool.kit", "vendor", "tool.kit"},
	}

	for _, testData := range cases {
		t.Run(testData.TestName, func(t *testing.T) {
			ref, err := ParseRepoAddr(testData.Addr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref.Owner != testData.Owner || ref.Name != testData.Name {
				t.Errorf("expected '%s/%s', got '%s/%s'", testData.Owner, testData.Name, ref.Owner, ref.Name)
			}
		})
	}
}

func TestParseRepoAddr_Errors(t *testing.T) {
	cases := []struct {
		TestName string
		Addr     string
	}{
		{"empty", ""},
		{"no separator", "no-slash"},
		{"unsupported host", "https://gitlab.com/vendor/reponame.git"},
		{"missing owner", "https://github.com/single.git"},
	}

	for _, testData := range cases {
		t.Run(testData.TestName, func(t *testing.T) {
			ref, err := ParseRepoAddr(testData.Addr)
			if err == nil {
				t.Errorf("expected error, got %+v", ref)
			}
		})
	}
}

func TestRepoRefRendering(t *testing.T) {
	ref := RepoRef{Host: "github.com", Owner: "test", Name: "testing"}

	if ref.String() != "test/testing" {
		t.Errorf("unexpected identifier: %s", ref.String())
	}
	if ref.CloneURL() != "https://github.com/test/testing.git" {
		t.Errorf("unexpected clone url: %s", ref.CloneURL())
	}
}
