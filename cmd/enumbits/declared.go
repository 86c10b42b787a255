package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/enumkit"
	"github.com/bearlytools/enumkit/internal/declfile"
)

// One type per kind, so a declaration of any width can be registered. The registry allows
// one registration per type, which is all a single invocation needs.
type (
	int8Decl   int8
	uint8Decl  uint8
	int16Decl  int16
	uint16Decl uint16
	int32Decl  int32
	uint32Decl uint32
	int64Decl  int64
	uint64Decl uint64
)

// declared is a registered declaration with its type parameter erased.
type declared interface {
	describe(w io.Writer)
	parse(ctx context.Context, text string, options ...enumkit.ParseOption) (string, error)
}

// load reads the declaration at path and registers it at its kind.
func load(path string) (declared, error) {
	d, err := declfile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	switch d.TypeKind() {
	case enumkit.KindInt8:
		return register[int8Decl](d)
	case enumkit.KindUint8:
		return register[uint8Decl](d)
	case enumkit.KindInt16:
		return register[int16Decl](d)
	case enumkit.KindUint16:
		return register[uint16Decl](d)
	case enumkit.KindInt32:
		return register[int32Decl](d)
	case enumkit.KindUint32:
		return register[uint32Decl](d)
	case enumkit.KindInt64:
		return register[int64Decl](d)
	case enumkit.KindUint64:
		return register[uint64Decl](d)
	}
	return nil, fmt.Errorf("%s: %w", path, enumkit.ErrUnsupportedKind)
}

type handle[E enumkit.Integer] struct {
	e *enumkit.Enum[E]
}

func register[E enumkit.Integer](d *declfile.Decl) (declared, error) {
	e, err := enumkit.Register(declfile.Members[E](d), declfile.Options[E](d)...)
	if err != nil {
		return nil, err
	}
	return handle[E]{e: e}, nil
}

func (h handle[E]) describe(w io.Writer) {
	e := h.e

	shape := e.Kind().String()
	if e.IsFlags() {
		shape += ", flags"
	}
	headingColor.Fprintf(w, "%s", e.Name())
	fmt.Fprintf(w, " (%s)\n", shape)

	writeLabel(w, "values")
	fmt.Fprintln(w, joinValues(e.Values()))
	writeLabel(w, "names")
	fmt.Fprintln(w, strings.Join(e.Names(), " "))

	writeLabel(w, "min")
	fmt.Fprintln(w, orDash(e.Min()))
	writeLabel(w, "max")
	fmt.Fprintln(w, orDash(e.Max()))
	writeLabel(w, "mask")
	fmt.Fprintln(w, orDash(e.FlagsMask()))

	if e.Len() == 0 {
		return
	}
	writeLabel(w, "members")
	fmt.Fprintln(w)
	for _, m := range e.Members() {
		fmt.Fprintf(w, "    %-16s %d", m.Name, m.Value)
		if dn, ok := e.DisplayName(m.Value); ok {
			fmt.Fprintf(w, "  %q", dn)
		}
		if desc, ok := e.Description(m.Value); ok {
			fmt.Fprintf(w, "  %s", desc)
		}
		fmt.Fprintln(w)
	}
}

func (h handle[E]) parse(ctx context.Context, text string, options ...enumkit.ParseOption) (string, error) {
	v, err := h.e.Parse(ctx, text, options...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %d", h.e.Format(v), v), nil
}

func writeLabel(w io.Writer, label string) {
	labelColor.Fprintf(w, "  %-8s", label+":")
}

func joinValues[E enumkit.Integer](values []E) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func orDash[E enumkit.Integer](v E, err error) string {
	if err != nil {
		return "-"
	}
	return fmt.Sprint(v)
}
