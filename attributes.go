package enumkit

// Attributes supplies optional display metadata for values of E. Implementations must be
// safe for concurrent use.
type Attributes[E Integer] interface {
	// DisplayName returns the display name registered for v.
	DisplayName(v E) (string, bool)
	// Description returns the description registered for v.
	Description(v E) (string, bool)
}

// Attribute is the display metadata of one value. Empty fields are treated as not set.
type Attribute struct {
	DisplayName string
	Description string
}

// AttributeMap is an Attributes backed by a map. It must not be modified after registration.
type AttributeMap[E Integer] map[E]Attribute

func (m AttributeMap[E]) DisplayName(v E) (string, bool) {
	a, ok := m[v]
	if !ok || a.DisplayName == "" {
		return "", false
	}
	return a.DisplayName, true
}

func (m AttributeMap[E]) Description(v E) (string, bool) {
	a, ok := m[v]
	if !ok || a.Description == "" {
		return "", false
	}
	return a.Description, true
}

// DisplayName returns the display name the registered Attributes report for v.
func (e *Enum[E]) DisplayName(v E) (string, bool) {
	if e.attrs == nil {
		return "", false
	}
	return e.attrs.DisplayName(v)
}

// Description returns the description the registered Attributes report for v.
func (e *Enum[E]) Description(v E) (string, bool) {
	if e.attrs == nil {
		return "", false
	}
	return e.attrs.Description(v)
}
