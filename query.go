package enumkit

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/enumkit/errors"
)

// Clamp returns lo if x < lo, hi if x > hi and x otherwise. The comparison is numeric.
// lo is checked first, so if lo > hi every x below lo clamps to lo.
func Clamp[E Integer](x, lo, hi E) E {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampToDefinedRange clamps x between Min and Max. This is a clamp on the numeric bounds,
// the result is not necessarily a declared value.
func (e *Enum[E]) ClampToDefinedRange(x E) (E, error) {
	lo, err := e.Min()
	if err != nil {
		return 0, err
	}
	hi, err := e.Max()
	if err != nil {
		return 0, err
	}
	return Clamp(x, lo, hi), nil
}

// IsDefined reports if x is a declared value. For a flag set x is defined when it is made
// only of declared flags, even if that combination was not declared itself.
func (e *Enum[E]) IsDefined(x E) bool {
	if e.flags {
		return e.IsValidFlagCombination(x)
	}
	_, ok := slices.BinarySearch(e.valueSet().asc, x)
	return ok
}

// IsDefinedName reports if name is a declared name. With ignoreCase names are compared after
// Unicode case folding.
func (e *Enum[E]) IsDefinedName(name string, ignoreCase bool) bool {
	_, ok := e.lookupName(name, ignoreCase)
	return ok
}

// ParseOption is an optional argument for Parse() and TryParse().
type ParseOption func(o *parseOptions)

type parseOptions struct {
	ignoreCase     bool
	allowUndefined bool
}

// IgnoreCase matches names without regard to case.
func IgnoreCase() ParseOption {
	return func(o *parseOptions) {
		o.ignoreCase = true
	}
}

// AllowUndefined accepts any value that parses, skipping the IsDefined check.
func AllowUndefined() ParseOption {
	return func(o *parseOptions) {
		o.allowUndefined = true
	}
}

// Parse converts text to a value of E. text is a declared name or a base 10 integer. For a
// flag set it may also be a comma separated list of names and integers, which are or'd.
//
// Unless AllowUndefined is passed, the result must satisfy IsDefined. The returned error
// wraps a *ParseError, which wraps ErrFormat if text did not parse and ErrNotDefined if the
// value is not defined.
//
// Failures are counted on the enumkit.parse.failures counter. The counter comes from the
// meter of context.Background(), not from ctx, which only carries the measurement.
func (e *Enum[E]) Parse(ctx context.Context, text string, options ...ParseOption) (E, error) {
	v, err := e.parse(text, options)
	if err != nil {
		typ := errType(err)
		recordParseFailure(ctx, e.name, typ)
		return 0, errors.E(ctx, errors.CatUser, typ, &ParseError{Type: e.name, Input: text, Err: err})
	}
	return v, nil
}

// TryParse is Parse that only reports success.
func (e *Enum[E]) TryParse(text string, options ...ParseOption) (E, bool) {
	v, err := e.parse(text, options)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (e *Enum[E]) parse(text string, options []ParseOption) (E, error) {
	var opts parseOptions
	for _, o := range options {
		o(&opts)
	}

	s := strings.TrimSpace(text)
	var v E
	if e.flags && strings.Contains(s, ",") {
		var acc uint64
		for part := range strings.SplitSeq(s, ",") {
			p, ok := e.parseOne(strings.TrimSpace(part), opts.ignoreCase)
			if !ok {
				return 0, ErrFormat
			}
			acc = e.ops.Or(acc, uint64(p))
		}
		v = E(acc)
	} else {
		p, ok := e.parseOne(s, opts.ignoreCase)
		if !ok {
			return 0, ErrFormat
		}
		v = p
	}

	if !opts.allowUndefined && !e.IsDefined(v) {
		return 0, ErrNotDefined
	}
	return v, nil
}

// parseOne parses a single name or integer.
func (e *Enum[E]) parseOne(s string, ignoreCase bool) (E, bool) {
	if s == "" {
		return 0, false
	}
	if v, ok := e.lookupName(s, ignoreCase); ok {
		return v, true
	}

	k := e.ops.Kind()
	if k.Signed() {
		n, err := strconv.ParseInt(s, 10, k.Bits())
		if err != nil {
			return 0, false
		}
		return E(n), true
	}
	n, err := strconv.ParseUint(s, 10, k.Bits())
	if err != nil {
		return 0, false
	}
	return E(n), true
}

// Format returns the first declared name of x. For a flag set that is not a declared value
// but is composed of declared values, it returns their names joined by ", ". Otherwise it is
// the base 10 value. Parse accepts everything Format returns.
func (e *Enum[E]) Format(x E) string {
	if name, ok := e.NameOf(x); ok {
		return name
	}
	if e.flags && x != 0 {
		if names, ok := e.flagNames(x); ok {
			return strings.Join(names, ", ")
		}
	}
	if e.ops.Kind().Signed() {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

// flagNames decomposes x greedily from the largest declared value down.
func (e *Enum[E]) flagNames(x E) ([]string, bool) {
	var picked []E
	rem := x
	for _, v := range e.valueSet().desc {
		if v == 0 || !e.HasFlags(rem, v) {
			continue
		}
		picked = append(picked, v)
		rem = e.AndNot(rem, v)
		if rem == 0 {
			break
		}
	}
	if rem != 0 {
		return nil, false
	}

	names := make([]string, 0, len(picked))
	for i := len(picked) - 1; i >= 0; i-- {
		name, _ := e.NameOf(picked[i])
		names = append(names, name)
	}
	return names, true
}

// RandomDefinedValue returns one of the declared values, each with equal chance. Aliases do
// not make a value more likely.
func (e *Enum[E]) RandomDefinedValue() (E, error) {
	asc := e.valueSet().asc
	if len(asc) == 0 {
		return 0, e.emptyErr("RandomDefinedValue")
	}
	return asc[rand.IntN(len(asc))], nil
}
