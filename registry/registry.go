// Package registry keeps track of defined flags together with the file that defined
// them, and hands out immutable snapshots for completion.
package registry

import (
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/napalu/flagcomp/types"
	"github.com/spf13/pflag"
	orderedmap "github.com/wk8/go-ordered-map"
)

// AnnotationDefinedIn is the pflag annotation holding a flag's defining file
const AnnotationDefinedIn = "flagcomp.defined_in"

// NameConversionFunc converts a flag name before it is defined
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToSnakeCase converts a name to snake case "max_connections"
	ToSnakeCase NameConversionFunc = strcase.ToSnake

	// ToKebabCase converts a name to kebab case "max-connections"
	ToKebabCase NameConversionFunc = strcase.ToKebab

	// KeepName leaves names untouched
	KeepName NameConversionFunc = func(s string) string { return s }
)

// ConfigureRegistryFunc is used when creating a Registry
type ConfigureRegistryFunc func(r *Registry)

// Registry wraps a pflag.FlagSet. Every flag defined through it records the source
// file of its caller, and definition order is preserved for snapshots.
type Registry struct {
	mu            sync.RWMutex
	flags         *pflag.FlagSet
	definedIn     *orderedmap.OrderedMap
	nameConverter NameConversionFunc
}

func New(name string, configs ...ConfigureRegistryFunc) *Registry {
	r := &Registry{
		flags:         pflag.NewFlagSet(name, pflag.ContinueOnError),
		definedIn:     orderedmap.New(),
		nameConverter: KeepName,
	}
	for _, config := range configs {
		config(r)
	}

	return r
}

// WithNameConverter converts every defined flag name, e.g. ToSnakeCase turns "MaxConns"
// into "max_conns"
func WithNameConverter(fn NameConversionFunc) ConfigureRegistryFunc {
	return func(r *Registry) {
		if fn != nil {
			r.nameConverter = fn
		}
	}
}

// WithFlagSet lets the registry define its flags on an existing set, such as a cobra
// command's
func WithFlagSet(fs *pflag.FlagSet) ConfigureRegistryFunc {
	return func(r *Registry) {
		if fs != nil {
			r.flags = fs
		}
	}
}

// FlagSet returns the underlying flag set
func (r *Registry) FlagSet() *pflag.FlagSet {
	return r.flags
}

// Parse parses args, which should not include the program name
func (r *Registry) Parse(args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.flags.Parse(args)
}

func (r *Registry) String(name, value, usage string) *string {
	var p *string
	r.define(name, definedAt(1), func(n string) { p = r.flags.String(n, value, usage) })
	return p
}

func (r *Registry) Bool(name string, value bool, usage string) *bool {
	var p *bool
	r.define(name, definedAt(1), func(n string) { p = r.flags.Bool(n, value, usage) })
	return p
}

func (r *Registry) Int(name string, value int, usage string) *int {
	var p *int
	r.define(name, definedAt(1), func(n string) { p = r.flags.Int(n, value, usage) })
	return p
}

func (r *Registry) Int32(name string, value int32, usage string) *int32 {
	var p *int32
	r.define(name, definedAt(1), func(n string) { p = r.flags.Int32(n, value, usage) })
	return p
}

func (r *Registry) Int64(name string, value int64, usage string) *int64 {
	var p *int64
	r.define(name, definedAt(1), func(n string) { p = r.flags.Int64(n, value, usage) })
	return p
}

func (r *Registry) Uint64(name string, value uint64, usage string) *uint64 {
	var p *uint64
	r.define(name, definedAt(1), func(n string) { p = r.flags.Uint64(n, value, usage) })
	return p
}

func (r *Registry) Float64(name string, value float64, usage string) *float64 {
	var p *float64
	r.define(name, definedAt(1), func(n string) { p = r.flags.Float64(n, value, usage) })
	return p
}

func (r *Registry) Duration(name string, value time.Duration, usage string) *time.Duration {
	var p *time.Duration
	r.define(name, definedAt(1), func(n string) { p = r.flags.Duration(n, value, usage) })
	return p
}

func (r *Registry) StringSlice(name string, value []string, usage string) *[]string {
	var p *[]string
	r.define(name, definedAt(1), func(n string) { p = r.flags.StringSlice(n, value, usage) })
	return p
}

// Var defines a flag with a custom pflag.Value
func (r *Registry) Var(value pflag.Value, name, usage string) {
	r.define(name, definedAt(1), func(n string) { r.flags.Var(value, n, usage) })
}

// Snapshot returns every flag in definition order. The snapshot is a copy and is safe to
// use while other goroutines keep defining or parsing flags.
func (r *Registry) Snapshot() types.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(types.Snapshot, 0, r.definedIn.Len())
	for pair := r.definedIn.Oldest(); pair != nil; pair = pair.Next() {
		f := r.flags.Lookup(pair.Key.(string))
		if f == nil {
			continue
		}
		snap = append(snap, fromPFlag(f, pair.Value.(string)))
	}

	return snap
}

// define panics when the name is already taken, as pflag does
func (r *Registry) define(name, file string, fn func(name string)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = r.nameConverter(name)
	fn(name)
	r.definedIn.Set(name, file)
	_ = r.flags.SetAnnotation(name, AnnotationDefinedIn, []string{file})
}

// definedAt returns the source file skip frames above its caller
func definedAt(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}

	return strings.ReplaceAll(file, "\\", "/")
}

func fromPFlag(f *pflag.Flag, definedIn string) types.Flag {
	return types.Flag{
		Name:         f.Name,
		Type:         f.Value.Type(),
		DefaultValue: f.DefValue,
		CurrentValue: f.Value.String(),
		Description:  f.Usage,
		DefinedIn:    definedIn,
	}
}
