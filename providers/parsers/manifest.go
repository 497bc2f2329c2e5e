package parsers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultManifestName is used when no manifest path is configured.
const DefaultManifestName = "depscout.yml"

// NewManifestParser constructs a manifest parser.
// If 'filename' parameter is an empty string - 'depscout.yml' will be used instead.
func NewManifestParser(filename string) *ManifestParser {
	if filename == "" {
		return &ManifestParser{SourceName: DefaultManifestName}
	}
	return &ManifestParser{SourceName: filename}
}

// ManifestParser reads and writes the yaml dependency manifest.
type ManifestParser struct {
	// SourceName is the manifest filename (e.g. 'depscout.yml')
	SourceName string
}

// Parse reads the manifest from disk. A missing file surfaces as ErrFileNotFound.
func (p ManifestParser) Parse() (*Manifest, error) {
	b, err := os.ReadFile(p.SourceName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to read the dependency manifest: %w", err)
	}
	return ParseManifest(b)
}

// ParseManifest decodes raw manifest content.
func ParseManifest(b []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unable to parse the dependency manifest: %w", err)
	}
	return &m, nil
}

// Save writes the manifest back to disk.
func (p ManifestParser) Save(m *Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("unable to encode the dependency manifest: %w", err)
	}
	if err := os.WriteFile(p.SourceName, b, 0644); err != nil {
		return fmt.Errorf("unable to write the dependency manifest: %w", err)
	}
	return nil
}
