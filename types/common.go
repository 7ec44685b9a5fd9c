package types

import "strings"

// Flag describes one registered command-line option. Values are carried as text; a Flag
// is never mutated once it is part of a Snapshot.
type Flag struct {
	Name         string `toml:"name"`
	Type         string `toml:"type"`
	DefaultValue string `toml:"default"`
	CurrentValue string `toml:"current"`
	Description  string `toml:"description"`
	DefinedIn    string `toml:"defined_in"`
}

// IsString reports whether the flag holds a string value
func (f Flag) IsString() bool {
	return f.Type == "string"
}

// IsDefault reports whether the current value is still the default
func (f Flag) IsDefault() bool {
	return f.CurrentValue == f.DefaultValue
}

// Snapshot is a point-in-time, ordered copy of all flags known to a registry.
// Order is definition order and is significant for ownership inference.
type Snapshot []Flag

// Lookup returns the first flag called name
func (s Snapshot) Lookup(name string) (Flag, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}

	return Flag{}, false
}

// Names returns the flag names in snapshot order
func (s Snapshot) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}

	return names
}

// DefinedUnder returns the flags whose defining path contains dir
func (s Snapshot) DefinedUnder(dir string) Snapshot {
	var out Snapshot
	for _, f := range s {
		if strings.Contains(f.DefinedIn, dir) {
			out = append(out, f)
		}
	}

	return out
}
