// Package declfile reads enumerated type declarations from TOML files. A declaration looks
// like:
//
//	name = "Permission"
//	kind = "uint8"
//	flags = true
//
//	[[member]]
//	name = "Read"
//	value = 1
//	display_name = "Read access"
//
//	[[member]]
//	name = "Write"
//	value = 2
//
// TOML integers are 64 bit signed, so a uint64 member above math.MaxInt64 cannot be declared.
package declfile

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/bearlytools/enumkit"
	"github.com/bearlytools/enumkit/errors"
	"github.com/bearlytools/enumkit/internal/bits"
)

// ErrInvalid indicates a declaration file that decoded but does not describe a type.
var ErrInvalid = errors.New("invalid declaration")

// Decl is a decoded declaration.
type Decl struct {
	Name    string   `toml:"name"`
	Kind    string   `toml:"kind"`
	Flags   bool     `toml:"flags"`
	Members []Member `toml:"member"`

	// kind is Kind after validation.
	kind bits.Kind
}

// Member is one [[member]] table.
type Member struct {
	Name        string `toml:"name"`
	Value       int64  `toml:"value"`
	DisplayName string `toml:"display_name"`
	Description string `toml:"description"`
}

// TypeKind is the validated representation of the declaration.
func (d *Decl) TypeKind() enumkit.Kind {
	return d.kind
}

// LoadFile reads and validates the declaration at path.
func LoadFile(path string) (*Decl, error) {
	var d Decl
	meta, err := toml.DecodeFile(path, &d)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := d.validate(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &d, nil
}

// Decode reads and validates a declaration from r.
func Decode(r io.Reader) (*Decl, error) {
	var d Decl
	meta, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := d.validate(meta); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Decl) validate(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("name") || strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalid)
	}
	if !meta.IsDefined("kind") {
		return fmt.Errorf("%w: missing kind", ErrInvalid)
	}
	k, err := bits.ParseKind(strings.TrimSpace(d.Kind))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	d.kind = k

	for i, m := range d.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: member %d has no name", ErrInvalid, i)
		}
		if err := fits(k, m.Value); err != nil {
			return fmt.Errorf("%w: member %s: %d does not fit %s: %w", ErrInvalid, m.Name, m.Value, k, err)
		}
	}
	return nil
}

// fits reports an error if v is outside the range of k.
func fits(k bits.Kind, v int64) error {
	var err error
	switch k {
	case bits.KindInt8:
		_, err = safecast.Conv[int8](v)
	case bits.KindUint8:
		_, err = safecast.Conv[uint8](v)
	case bits.KindInt16:
		_, err = safecast.Conv[int16](v)
	case bits.KindUint16:
		_, err = safecast.Conv[uint16](v)
	case bits.KindInt32:
		_, err = safecast.Conv[int32](v)
	case bits.KindUint32:
		_, err = safecast.Conv[uint32](v)
	case bits.KindInt64:
	case bits.KindUint64:
		_, err = safecast.Conv[uint64](v)
	default:
		err = fmt.Errorf("%w: %s", bits.ErrUnsupportedKind, k)
	}
	return err
}

// Members converts the declared members to E. E must have the declaration's kind.
func Members[E enumkit.Integer](d *Decl) []enumkit.Member[E] {
	out := make([]enumkit.Member[E], 0, len(d.Members))
	for _, m := range d.Members {
		out = append(out, enumkit.Member[E]{Name: m.Name, Value: E(m.Value)})
	}
	return out
}

// Attributes returns the display names and descriptions of the declared members. A value
// declared more than once keeps the first member's attributes.
func Attributes[E enumkit.Integer](d *Decl) enumkit.AttributeMap[E] {
	attrs := enumkit.AttributeMap[E]{}
	for _, m := range d.Members {
		if m.DisplayName == "" && m.Description == "" {
			continue
		}
		v := E(m.Value)
		if _, ok := attrs[v]; ok {
			continue
		}
		attrs[v] = enumkit.Attribute{DisplayName: m.DisplayName, Description: m.Description}
	}
	return attrs
}

// Options returns the registration options the declaration asks for.
func Options[E enumkit.Integer](d *Decl) []enumkit.Option {
	opts := []enumkit.Option{
		enumkit.WithName(d.Name),
		enumkit.WithAttributes[E](Attributes[E](d)),
	}
	if d.Flags {
		opts = append(opts, enumkit.WithFlags())
	}
	return opts
}
