package registry

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/napalu/flagcomp/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrDuplicateFlag   = errors.New("duplicate flag")
	ErrUnnamedFlag     = errors.New("flag without a name")
)

// FromPFlagSet snapshots a pflag.FlagSet. The defining file is read from the
// AnnotationDefinedIn annotation when present. Flags are visited in the set's own order,
// which is lexicographic unless SortFlags is false.
func FromPFlagSet(fs *pflag.FlagSet) types.Snapshot {
	var snap types.Snapshot
	fs.VisitAll(func(f *pflag.Flag) {
		var definedIn string
		if files := f.Annotations[AnnotationDefinedIn]; len(files) > 0 {
			definedIn = files[0]
		}
		snap = append(snap, fromPFlag(f, definedIn))
	})

	return snap
}

// FromFlagSet snapshots a standard library flag.FlagSet. The standard library does not
// record where flags come from, so all of them are attributed to definedIn.
func FromFlagSet(fs *flag.FlagSet, definedIn string) types.Snapshot {
	var snap types.Snapshot
	fs.VisitAll(func(f *flag.Flag) {
		snap = append(snap, types.Flag{
			Name:         f.Name,
			Type:         stdFlagType(f),
			DefaultValue: f.DefValue,
			CurrentValue: f.Value.String(),
			Description:  f.Usage,
			DefinedIn:    definedIn,
		})
	})

	return snap
}

func stdFlagType(f *flag.Flag) string {
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return "value"
	}

	switch getter.Get().(type) {
	case time.Duration:
		return "duration"
	case func(string) error:
		return "func"
	default:
		return fmt.Sprintf("%T", getter.Get())
	}
}

type snapshotFile struct {
	Flags []types.Flag `toml:"flag"`
}

// LoadSnapshot decodes a snapshot stored as TOML:
//
//	[[flag]]
//	name = "port"
//	type = "int32"
//	default = "80"
//	description = "listen port"
//	defined_in = "/src/server/server.go"
//
// A missing current value means the flag still holds its default.
func LoadSnapshot(r io.Reader) (types.Snapshot, error) {
	var file snapshotFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	seen := make(map[string]struct{}, len(file.Flags))
	snap := make(types.Snapshot, 0, len(file.Flags))
	for i, f := range file.Flags {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %w: entry %d", ErrInvalidSnapshot, ErrUnnamedFlag, i)
		}
		if _, exists := seen[f.Name]; exists {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidSnapshot, ErrDuplicateFlag, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.CurrentValue == "" {
			f.CurrentValue = f.DefaultValue
		}
		snap = append(snap, f)
	}

	return snap, nil
}
