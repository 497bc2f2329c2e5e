/*
Package parsers provides reading and writing of the recorded dependency manifest.

Goals:
 - Parsing the dependency manifest into a readable struct
 - Writing updated dependency lists back

Usage:
	todo:
*/
package parsers

import (
	"errors"
)

var (
	ErrFileNotFound = errors.New("manifest file not found")
)

// Dependency represents one recorded dependency: a display title, the
// 'owner/name' repository identifier and the recorded update constraint.
type Dependency struct {
	Name       string `yaml:"name,omitempty"`
	Repository string `yaml:"repository"`
	Constraint string `yaml:"constraint"`
}

// Manifest represents the persisted dependency list.
type Manifest struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// Add appends a dependency, replacing a previously recorded entry for the
// same repository identifier.
func (m *Manifest) Add(dep Dependency) {
	for i, d := range m.Dependencies {
		if d.Repository == dep.Repository {
			m.Dependencies[i] = dep
			return
		}
	}
	m.Dependencies = append(m.Dependencies, dep)
}
