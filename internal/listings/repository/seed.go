package repository

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed/listings.yaml
var seedFS embed.FS

type seedFile struct {
	Listings []Listing `yaml:"listings"`
}

func loadSeed() ([]Listing, error) {
	raw, err := seedFS.ReadFile("seed/listings.yaml")
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	for _, l := range file.Listings {
		if l.ID == "" {
			return nil, fmt.Errorf("seed catalog: listing without id")
		}
		if !KnownType(string(l.Type)) {
			return nil, fmt.Errorf("seed catalog: listing %s has unknown type %q", l.ID, l.Type)
		}
		if l.Price <= 0 {
			return nil, fmt.Errorf("seed catalog: listing %s has non-positive price", l.ID)
		}
	}

	return file.Listings, nil
}
