// Package selector tags HTML elements with data-scene-* attributes and
// builds the selectors that find them again.
package selector

import (
	"fmt"
	"strings"
)

// Marker is the kind of thing an element represents.
type Marker string

// Marker kinds, from the coarsest to the finest.
const (
	// Flow is an element representing a UI flow.
	Flow Marker = "flow"
	// Page is an element representing a logical page.
	Page Marker = "page"
	// Component is an element representing a web component.
	Component Marker = "comp"
	// Element is an element representing an atomic widget.
	Element Marker = "elem"
)

// Attribute names.
const (
	attrPrefix = "data-scene-"
	AttrID     = attrPrefix + "id"
	AttrRef    = attrPrefix + "ref"
)

// Attr returns the attribute name marking elements of kind m.
func (m Marker) Attr() string {
	return attrPrefix + string(m)
}

func (m Marker) orDefault() Marker {
	if m == "" {
		return Component
	}
	return m
}

// CreateMarker returns the attributes tagging an element as name of kind
// m, plus its id when id is not empty. An empty m means Component.
func CreateMarker(name string, m Marker, id string) map[string]string {
	attrs := map[string]string{m.orDefault().Attr(): name}
	if id != "" {
		attrs[AttrID] = id
	}
	return attrs
}

// CreateMarkerRef returns the attribute tying an element to its parent
// name of kind m, see Builder.In.
func CreateMarkerRef(name string, m Marker, id string) map[string]string {
	return map[string]string{AttrRef: reference(name, m, id)}
}

func reference(name string, m Marker, id string) string {
	if id != "" {
		return fmt.Sprintf("%s:%s:%s", m.orDefault(), name, id)
	}
	return fmt.Sprintf("%s:%s", m.orDefault(), name)
}

// cssString escapes the characters that cannot appear verbatim in a
// double-quoted CSS string.
var cssString = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `) //nolint:gochecknoglobals

// attrEquals returns the [attr="value"] attribute selector.
func attrEquals(attr, value string) string {
	return "[" + attr + `="` + cssString.Replace(value) + `"]`
}

// Builder builds a selector for a marked element.
type Builder struct {
	base    string
	context string
}

// For starts a selector for the element tagged as name of kind m.
func For(name string, m Marker, id string) *Builder {
	base := "*" + attrEquals(m.orDefault().Attr(), name)
	if id != "" {
		base += attrEquals(AttrID, id)
	}
	return &Builder{base: base}
}

// In narrows the selector to elements referencing the parent name of kind
// m. Only the last call counts.
func (b *Builder) In(name string, m Marker, id string) *Builder {
	b.context = attrEquals(AttrRef, reference(name, m, id))
	return b
}

// Build returns the selector in the engine's css= syntax.
func (b *Builder) Build() string {
	return "css=" + b.base + b.context
}

func (b *Builder) String() string {
	return b.Build()
}
