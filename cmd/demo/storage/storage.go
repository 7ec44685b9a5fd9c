// Package storage holds the demo's persistence settings
package storage

import (
	"fmt"

	"github.com/napalu/flagcomp/registry"
)

type Flags struct {
	Dir       *string
	SyncEvery *int
	Backends  *[]string
}

func RegisterFlags(reg *registry.Registry) *Flags {
	return &Flags{
		Dir:       reg.String("storage_dir", "/var/lib/demo", "Directory holding greeting history"),
		SyncEvery: reg.Int("storage_sync_every", 100, "Flush to disk after this many writes"),
		Backends:  reg.StringSlice("storage_backends", []string{"file"}, "Ordered list of storage backends"),
	}
}

func (f *Flags) String() string {
	return fmt.Sprintf("%s (sync every %d, backends %v)", *f.Dir, *f.SyncEvery, *f.Backends)
}
