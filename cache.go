package enumkit

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gostdlib/base/context"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/bearlytools/enumkit/errors"
)

// valueSet holds the declared values, deduplicated and sorted numerically.
type valueSet[E Integer] struct {
	asc  []E
	desc []E
}

// nameEntry is a name (or its case folded key) and the value it was declared with.
type nameEntry[E Integer] struct {
	key   string
	value E
}

// nameSet holds the declared names sorted byte-wise, and a second index keyed by the case
// folded name for case insensitive lookups.
type nameSet[E Integer] struct {
	asc    []string
	desc   []string
	exact  []nameEntry[E]
	folded []nameEntry[E]
}

func (e *Enum[E]) valueSet() *valueSet[E] {
	if vs := e.values.Load(); vs != nil {
		return vs
	}

	asc := make([]E, 0, len(e.members))
	for _, m := range e.members {
		asc = append(asc, m.Value)
	}
	slices.Sort(asc)
	asc = slices.Compact(asc)

	desc := slices.Clone(asc)
	slices.Reverse(desc)

	vs := &valueSet[E]{asc: asc, desc: desc}
	// Racing builders store equal sets, so it does not matter whose Store lands.
	e.values.Store(vs)
	logger().Debug("enumkit: built value set", zap.String("name", e.name), zap.Int("values", len(asc)))
	return vs
}

func (e *Enum[E]) nameSet() *nameSet[E] {
	if ns := e.names.Load(); ns != nil {
		return ns
	}

	fold := cases.Fold()
	ns := &nameSet[E]{
		exact:  make([]nameEntry[E], 0, len(e.members)),
		folded: make([]nameEntry[E], 0, len(e.members)),
	}
	for _, m := range e.members {
		ns.exact = append(ns.exact, nameEntry[E]{key: m.Name, value: m.Value})
		ns.folded = append(ns.folded, nameEntry[E]{key: fold.String(m.Name), value: m.Value})
	}
	slices.SortFunc(ns.exact, compareEntries[E])
	// Names that fold to the same key keep declaration order, so the first declared wins.
	slices.SortStableFunc(ns.folded, compareEntries[E])

	ns.asc = make([]string, len(ns.exact))
	for i, n := range ns.exact {
		ns.asc[i] = n.key
	}
	ns.desc = slices.Clone(ns.asc)
	slices.Reverse(ns.desc)

	e.names.Store(ns)
	logger().Debug("enumkit: built name set", zap.String("name", e.name), zap.Int("names", len(ns.asc)))
	return ns
}

func compareEntries[E Integer](a, b nameEntry[E]) int {
	return cmp.Compare(a.key, b.key)
}

// lookupName finds the value declared as name with a binary search.
func (e *Enum[E]) lookupName(name string, ignoreCase bool) (E, bool) {
	ns := e.nameSet()

	entries := ns.exact
	if ignoreCase {
		entries = ns.folded
		name = cases.Fold().String(name)
	}

	i, ok := slices.BinarySearchFunc(entries, name, func(n nameEntry[E], target string) int {
		return cmp.Compare(n.key, target)
	})
	if !ok {
		return 0, false
	}
	return entries[i].value, true
}

// Values returns the declared values in ascending order, without duplicates.
func (e *Enum[E]) Values() []E {
	return slices.Clone(e.valueSet().asc)
}

// ValuesDescending returns the declared values in descending order, without duplicates.
func (e *Enum[E]) ValuesDescending() []E {
	return slices.Clone(e.valueSet().desc)
}

// Names returns the declared names in ascending byte-wise order. Aliases each have an entry.
func (e *Enum[E]) Names() []string {
	return slices.Clone(e.nameSet().asc)
}

// NamesDescending returns the declared names in descending byte-wise order.
func (e *Enum[E]) NamesDescending() []string {
	return slices.Clone(e.nameSet().desc)
}

// Min returns the smallest declared value.
func (e *Enum[E]) Min() (E, error) {
	asc := e.valueSet().asc
	if len(asc) == 0 {
		return 0, e.emptyErr("Min")
	}
	return asc[0], nil
}

// Max returns the largest declared value.
func (e *Enum[E]) Max() (E, error) {
	asc := e.valueSet().asc
	if len(asc) == 0 {
		return 0, e.emptyErr("Max")
	}
	return asc[len(asc)-1], nil
}

// FlagsMask returns every declared value or'd together. It is computed on the first call.
func (e *Enum[E]) FlagsMask() (E, error) {
	if m := e.mask.Load(); m != nil {
		return *m, nil
	}

	asc := e.valueSet().asc
	if len(asc) == 0 {
		return 0, e.emptyErr("FlagsMask")
	}

	acc := uint64(asc[0])
	for _, v := range asc[1:] {
		acc = e.ops.Or(acc, uint64(v))
	}
	m := E(acc)
	e.mask.Store(&m)
	logger().Debug("enumkit: built flags mask", zap.String("name", e.name), zap.Uint64("mask", acc))
	return m, nil
}

// MaxFlagValue is FlagsMask.
func (e *Enum[E]) MaxFlagValue() (E, error) {
	return e.FlagsMask()
}

func (e *Enum[E]) emptyErr(op string) error {
	err := fmt.Errorf("%w: %s.%s", ErrEmpty, e.name, op)
	return errors.E(context.Background(), errors.CatInternal, errors.TypeEmpty, err)
}
