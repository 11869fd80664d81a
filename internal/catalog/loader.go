package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type catalogFile struct {
	Profiles []fileProfile `toml:"profile"`
}

type fileProfile struct {
	Name         string             `toml:"name"`
	Environments []string           `toml:"environments"`
	Ideals       map[string]float64 `toml:"ideals"`
}

// Parse decodes a TOML catalog:
//
//	[[profile]]
//	name = "Chess"
//	environments = ["Indoor"]
//	[profile.ideals]
//	tactical = 1.0
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Profiles) == 0 {
		return nil, fmt.Errorf("catalog has no profiles")
	}

	entries := make([]ProfileEntry, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		e := ProfileEntry{
			Name:   p.Name,
			Ideals: make(map[Attribute]float64, len(p.Ideals)),
		}
		for k, v := range p.Ideals {
			e.Ideals[Attribute(k)] = v
		}
		for _, env := range p.Environments {
			e.Environments = append(e.Environments, Environment(env))
		}
		entries = append(entries, e)
	}

	return New(entries...)
}

// LoadFile reads a TOML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}
