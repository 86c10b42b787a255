/*
Package enumkit attaches cached metadata, validated parsing and width correct bit operations to
Go enumerated types.

Go has no enum declarations to reflect over, so a type is registered once with its members:

	type Permission uint8

	const (
		None    Permission = 0
		Read    Permission = 1
		Write   Permission = 2
		Execute Permission = 4
	)

	var permissions = enumkit.MustRegister(
		[]enumkit.Member[Permission]{
			{Name: "None", Value: None},
			{Name: "Read", Value: Read},
			{Name: "Write", Value: Write},
			{Name: "Execute", Value: Execute},
		},
		enumkit.WithFlags(),
	)

Registration resolves the bit operations for the type's representation (int8 through uint64,
int and uint) exactly once and fails for anything else, such as uintptr. Everything derived from
the declaration (sorted values and names, bounds, the combined flags mask) is computed lazily on
first use and kept for the life of the process.

Lazy fields use a benign race: goroutines that arrive before a field is published may each build
it, every build is a pure function of the immutable declaration, and whichever result is stored
last wins. Readers never lock.
*/
package enumkit

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/gostdlib/base/context"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/bearlytools/enumkit/errors"
	"github.com/bearlytools/enumkit/internal/bits"
)

// Integer is the set of types that can back an enumerated type. uintptr satisfies it but is
// rejected at registration.
type Integer = constraints.Integer

// Kind is the integer representation backing an enumerated type.
type Kind = bits.Kind

const (
	KindUnknown = bits.KindUnknown
	KindInt8    = bits.KindInt8
	KindUint8   = bits.KindUint8
	KindInt16   = bits.KindInt16
	KindUint16  = bits.KindUint16
	KindInt32   = bits.KindInt32
	KindUint32  = bits.KindUint32
	KindInt64   = bits.KindInt64
	KindUint64  = bits.KindUint64
)

// Member is one declared (name, value) pair. Several members may share a value, these are
// aliases and each keeps its own name.
type Member[E Integer] struct {
	Name  string
	Value E
}

// Enum holds the declaration of an enumerated type E and everything derived from it.
// It is safe for concurrent use.
type Enum[E Integer] struct {
	name    string
	flags   bool
	members []Member[E]
	attrs   Attributes[E]
	ops     bits.Ops

	values atomic.Pointer[valueSet[E]]
	names  atomic.Pointer[nameSet[E]]
	mask   atomic.Pointer[E]
}

// registry maps the reflect.Type of E to its *Enum[E]. It is copy on write. It is set in its
// var declaration so package level MustRegister calls can use it.
var registry = newRegistry()

func newRegistry() *atomic.Pointer[map[reflect.Type]any] {
	p := &atomic.Pointer[map[reflect.Type]any]{}
	p.Store(&map[reflect.Type]any{})
	return p
}

// Option is an optional argument for Register().
type Option func(o *options)

type options struct {
	flags bool
	name  string
	attrs any
}

// WithFlags marks the type as a flag set. Values of a flag set are defined when they are
// composed only of declared values, not just when they are declared.
func WithFlags() Option {
	return func(o *options) {
		o.flags = true
	}
}

// WithName sets the name used in errors and logs. It defaults to the Go type name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithAttributes supplies display names and descriptions for values.
func WithAttributes[E Integer](a Attributes[E]) Option {
	return func(o *options) {
		o.attrs = a
	}
}

// Register snapshots the declaration of E and binds the bit operations for its representation.
// members is copied, later changes to the slice are not seen. Each type can be registered once.
func Register[E Integer](members []Member[E], opts ...Option) (*Enum[E], error) {
	ctx := context.Background()
	t := reflect.TypeFor[E]()

	ops, err := bits.Resolve(t)
	if err != nil {
		logger().Error("enumkit: cannot register enumerated type", zap.Stringer("type", t), zap.Error(err))
		return nil, errors.E(ctx, errors.CatInternal, errors.TypeUnsupportedKind, err, errors.WithStackTrace())
	}

	cfg := defaultOptions(t)
	for _, o := range opts {
		o(&cfg)
	}

	e := &Enum[E]{
		name:    cfg.name,
		flags:   cfg.flags,
		members: make([]Member[E], len(members)),
		ops:     ops,
	}
	copy(e.members, members)

	if cfg.attrs != nil {
		attrs, ok := cfg.attrs.(Attributes[E])
		if !ok {
			err := fmt.Errorf("%w: attributes %T do not describe %s", ErrRegistration, cfg.attrs, t)
			return nil, errors.E(ctx, errors.CatInternal, errors.TypeRegistration, err)
		}
		e.attrs = attrs
	}

	seen := make(map[string]struct{}, len(e.members))
	for _, m := range e.members {
		if err := checkName(m.Name, e.flags); err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrRegistration, e.name, err)
			return nil, errors.E(ctx, errors.CatInternal, errors.TypeRegistration, err)
		}
		if _, ok := seen[m.Name]; ok {
			err := fmt.Errorf("%w: %s declares %q twice", ErrRegistration, e.name, m.Name)
			return nil, errors.E(ctx, errors.CatInternal, errors.TypeRegistration, err)
		}
		seen[m.Name] = struct{}{}
	}

	if !register(t, e) {
		err := fmt.Errorf("%w: %s is already registered", ErrRegistration, t)
		return nil, errors.E(ctx, errors.CatInternal, errors.TypeRegistration, err)
	}

	logger().Debug(
		"enumkit: registered enumerated type",
		zap.String("name", e.name),
		zap.Stringer("kind", ops.Kind()),
		zap.Int("members", len(e.members)),
		zap.Bool("flags", e.flags),
	)
	return e, nil
}

// MustRegister is Register but panics on error. It is meant for package level variables.
func MustRegister[E Integer](members []Member[E], opts ...Option) *Enum[E] {
	e, err := Register(members, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Of returns the registered Enum for E.
func Of[E Integer]() (*Enum[E], bool) {
	h, ok := (*registry.Load())[reflect.TypeFor[E]()]
	if !ok {
		return nil, false
	}
	return h.(*Enum[E]), true
}

// checkName rejects names that Format could return but Parse would not read back. Parse
// trims its input and, for a flag set, splits it on commas.
func checkName(name string, flags bool) error {
	switch {
	case name == "":
		return errors.New("empty name")
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("name %q has surrounding space", name)
	case flags && strings.Contains(name, ","):
		return fmt.Errorf("flag name %q contains a comma", name)
	}
	return nil
}

func defaultOptions(t reflect.Type) options {
	return options{name: t.String()}
}

// register adds e for t. It returns false if t is already registered.
func register(t reflect.Type, e any) bool {
	old := registry.Load()
	if _, ok := (*old)[t]; ok {
		return false
	}
	newMap := maps.Clone(*old)
	newMap[t] = e
	if !registry.CompareAndSwap(old, &newMap) {
		return register(t, e)
	}
	return true
}

// Name is the name of the enumerated type.
func (e *Enum[E]) Name() string {
	return e.name
}

// Len reports the number of declared members, aliases included.
func (e *Enum[E]) Len() int {
	return len(e.members)
}

// Member returns the ith declared member in declaration order. It panics if out of bounds.
func (e *Enum[E]) Member(i int) Member[E] {
	return e.members[i]
}

// Members returns a copy of the declared members in declaration order.
func (e *Enum[E]) Members() []Member[E] {
	out := make([]Member[E], len(e.members))
	copy(out, e.members)
	return out
}

// ByName returns the value declared as name. The match is exact.
func (e *Enum[E]) ByName(name string) (E, bool) {
	return e.lookupName(name, false)
}

// NameOf returns the first declared name for v.
func (e *Enum[E]) NameOf(v E) (string, bool) {
	// Declarations are small, a loop is as fast as a map here and needs no extra cache.
	for _, m := range e.members {
		if m.Value == v {
			return m.Name, true
		}
	}
	return "", false
}

// Kind is the integer representation backing E.
func (e *Enum[E]) Kind() Kind {
	return e.ops.Kind()
}

// Size returns the size in bits of the representation.
func (e *Enum[E]) Size() int {
	return e.ops.Kind().Bits()
}

// IsFlags reports if the type was registered as a flag set.
func (e *Enum[E]) IsFlags() bool {
	return e.flags
}

// Zero is numeric zero as E, whether or not zero is declared.
func (e *Enum[E]) Zero() E {
	return 0
}
