package bits

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// ErrUnsupportedKind is returned when a type's representation has no row in the table.
var ErrUnsupportedKind = errors.New("unsupported integer representation")

// table is indexed by Kind. KindUnknown has no row.
var table = [...]Ops{
	KindUnknown: nil,
	KindInt8:    signedOps[int8, uint8]{kind: KindInt8, width: 8},
	KindUint8:   unsignedOps[uint8]{kind: KindUint8, width: 8},
	KindInt16:   signedOps[int16, uint16]{kind: KindInt16, width: 16},
	KindUint16:  unsignedOps[uint16]{kind: KindUint16, width: 16},
	KindInt32:   signedOps[int32, uint32]{kind: KindInt32, width: 32},
	KindUint32:  unsignedOps[uint32]{kind: KindUint32, width: 32},
	KindInt64:   signedOps[int64, uint64]{kind: KindInt64, width: 64},
	KindUint64:  unsignedOps[uint64]{kind: KindUint64, width: 64},
}

// For returns the table row for k.
func For(k Kind) (Ops, error) {
	if int(k) >= len(table) || table[k] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
	return table[k], nil
}

// resolved caches the row bound to each type that has gone through Resolve. Writers copy the
// map and CompareAndSwap it in, readers never lock.
var resolved = newResolved()

func newResolved() *atomic.Pointer[map[reflect.Type]Ops] {
	p := &atomic.Pointer[map[reflect.Type]Ops]{}
	p.Store(&map[reflect.Type]Ops{})
	return p
}

// Resolve returns the table row for t, which must be an integer type of a fixed or
// platform width. The binding is cached per type, so only the first call for a type
// inspects it. uintptr and non-integer types return ErrUnsupportedKind and are never cached.
func Resolve(t reflect.Type) (Ops, error) {
	if ops, ok := (*resolved.Load())[t]; ok {
		return ops, nil
	}

	k := KindOf(t)
	if k == KindUnknown {
		return nil, fmt.Errorf("%w: %s has kind %s", ErrUnsupportedKind, t, t.Kind())
	}
	ops, err := For(k)
	if err != nil {
		return nil, err
	}
	store(t, ops)
	return ops, nil
}

// ResolveFor is Resolve for the type parameter T.
func ResolveFor[T constraints.Integer]() (Ops, error) {
	return Resolve(reflect.TypeFor[T]())
}

func store(t reflect.Type, ops Ops) {
	old := resolved.Load()
	if _, ok := (*old)[t]; ok {
		return // Already cached
	}
	newMap := maps.Clone(*old)
	newMap[t] = ops
	if !resolved.CompareAndSwap(old, &newMap) {
		store(t, ops)
	}
}
