// Package catalog holds the target profiles users are scored against.
//
// A Catalog is immutable once built. The compiled-in sports table is the
// default; tests and deployments can inject their own entries or load them
// from a TOML file.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Attribute names a dimension shared by user vectors and profile ideals
type Attribute string

const (
	AttrHeight       Attribute = "height"
	AttrBMI          Attribute = "bmi"
	AttrStrength     Attribute = "strength"
	AttrSpeed        Attribute = "speed"
	AttrEndurance    Attribute = "endurance"
	AttrReflex       Attribute = "reflex"
	AttrCoordination Attribute = "coordination"
	AttrFlexibility  Attribute = "flexibility"
	AttrTactical     Attribute = "tactical"
	AttrTeam         Attribute = "team"
	AttrAggression   Attribute = "aggression"
)

// Attributes lists every known attribute
var Attributes = []Attribute{
	AttrHeight, AttrBMI, AttrStrength, AttrSpeed, AttrEndurance, AttrReflex,
	AttrCoordination, AttrFlexibility, AttrTactical, AttrTeam, AttrAggression,
}

// Neutral is used for an attribute a profile does not specify
const Neutral = 0.5

// Environment is where an activity is practised
type Environment string

const (
	EnvIndoor  Environment = "Indoor"
	EnvOutdoor Environment = "Outdoor"
	EnvWater   Environment = "Water"
	EnvAny     Environment = "Any"
)

// ProfileEntry is one target profile with ideal attribute values in [0,1]
type ProfileEntry struct {
	Name         string                `json:"name" toml:"name"`
	Ideals       map[Attribute]float64 `json:"ideals" toml:"ideals"`
	Environments []Environment         `json:"environments" toml:"environments"`
}

// Ideal returns the ideal value for an attribute, Neutral when unspecified
func (p ProfileEntry) Ideal(a Attribute) float64 {
	if v, ok := p.Ideals[a]; ok {
		return v
	}
	return Neutral
}

// IsTeam reports whether the profile is a full team activity (team ideal of 1)
func (p ProfileEntry) IsTeam() bool {
	return p.Ideal(AttrTeam) >= 1
}

// Prefers reports whether the profile lists env as a preferred environment
func (p ProfileEntry) Prefers(env Environment) bool {
	for _, e := range p.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// Valid reports whether a is one of Attributes
func (a Attribute) Valid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}

// Validate checks the name and that every ideal is a known attribute in [0,1]
func (p ProfileEntry) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("profile name is required"))
	}
	for a, v := range p.Ideals {
		if !a.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown attribute %q", p.Name, a))
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s: ideal %s=%v outside [0,1]", p.Name, a, v))
		}
	}
	for _, e := range p.Environments {
		switch e {
		case EnvIndoor, EnvOutdoor, EnvWater, EnvAny:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown environment %q", p.Name, e))
		}
	}
	return errors.Join(errs...)
}

func (p ProfileEntry) clone() ProfileEntry {
	ideals := make(map[Attribute]float64, len(p.Ideals))
	for k, v := range p.Ideals {
		ideals[k] = v
	}
	envs := make([]Environment, len(p.Environments))
	copy(envs, p.Environments)
	return ProfileEntry{Name: p.Name, Ideals: ideals, Environments: envs}
}

// Catalog is an ordered, immutable set of profiles.
// Declaration order is the ranking tie-break.
type Catalog struct {
	entries []ProfileEntry
}

// New validates and copies the entries into a Catalog
func New(entries ...ProfileEntry) (*Catalog, error) {
	var errs []error
	seen := make(map[string]bool, len(entries))
	c := &Catalog{entries: make([]ProfileEntry, 0, len(entries))}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate profile %q", e.Name))
			continue
		}
		seen[key] = true
		c.entries = append(c.entries, e.clone())
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// MustNew is New for compiled-in tables; it panics on invalid data
func MustNew(entries ...ProfileEntry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of profiles
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the profiles in declaration order
func (c *Catalog) Entries() []ProfileEntry {
	out := make([]ProfileEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// Each calls fn for every profile in declaration order without copying
func (c *Catalog) Each(fn func(i int, p ProfileEntry)) {
	for i, e := range c.entries {
		fn(i, e)
	}
}

// Find looks up a profile by case-insensitive name
func (c *Catalog) Find(name string) (ProfileEntry, bool) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, name) {
			return e.clone(), true
		}
	}
	return ProfileEntry{}, false
}
