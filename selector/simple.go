package selector

import "strings"

// Selector is implemented by simple and by combined selectors.
type Selector interface {
	Stringify() string // canonical CSS text
	Err() error        // first violation recorded while building, if any
}

// Simple is a simple selector, i.e. a selector without combinators.
// The zero value is an empty selector.
type Simple struct {
	parts [partCount][]string
	state int8 // latest part set + 1; 0 for the empty selector
	err   error
}

// Element starts a new simple selector with an element (type) part.
func Element(v string) *Simple { return new(Simple).Element(v) }

// ID starts a new simple selector with an id part.
func ID(v string) *Simple { return new(Simple).ID(v) }

// Class starts a new simple selector with a class part.
func Class(v string) *Simple { return new(Simple).Class(v) }

// Attr starts a new simple selector with an attribute part.
// v is the condition without brackets, e.g. `href$=".png"`.
func Attr(v string) *Simple { return new(Simple).Attr(v) }

// PseudoClass starts a new simple selector with a pseudo-class part.
func PseudoClass(v string) *Simple { return new(Simple).PseudoClass(v) }

// PseudoElement starts a new simple selector with a pseudo-element part.
func PseudoElement(v string) *Simple { return new(Simple).PseudoElement(v) }

// Element sets the element part.
func (s *Simple) Element(v string) *Simple { return s.chain(ElementPart, v) }

// ID sets the id part.
func (s *Simple) ID(v string) *Simple { return s.chain(IDPart, v) }

// Class adds a class part.
func (s *Simple) Class(v string) *Simple { return s.chain(ClassPart, v) }

// Attr adds an attribute part.
func (s *Simple) Attr(v string) *Simple { return s.chain(AttrPart, v) }

// PseudoClass adds a pseudo-class part.
func (s *Simple) PseudoClass(v string) *Simple { return s.chain(PseudoClassPart, v) }

// PseudoElement sets the pseudo-element part.
func (s *Simple) PseudoElement(v string) *Simple { return s.chain(PseudoElementPart, v) }

func (s *Simple) chain(p Part, v string) *Simple {
	if s.err == nil {
		s.err = s.Set(p, v)
	}
	return s
}

// Set adds a part to s. If the part is not allowed at this point, s remains
// unchanged and either a *DuplicateSelectorPartError or an
// *OutOfOrderSelectorPartError is returned.
//
// Set does not look at errors recorded by the chaining methods.
func (s *Simple) Set(p Part, v string) error {
	if p < 0 || p >= partCount {
		panic("selector: invalid selector part")
	}
	switch lookup(len(s.parts[p]) > 0, s.state, p) {
	case duplicate:
		return &DuplicateSelectorPartError{Part: p}
	case outOfOrder:
		return &OutOfOrderSelectorPartError{Part: p, After: Part(s.state - 1)}
	}
	s.parts[p] = append(s.parts[p], v)
	s.state = int8(p) + 1
	tracer().Debugf("selector: add %s %q", p, v)
	return nil
}

// Has reports whether part p is set.
func (s *Simple) Has(p Part) bool {
	return p >= 0 && p < partCount && len(s.parts[p]) > 0
}

// Values returns the values of part p in the order they have been added.
func (s *Simple) Values(p Part) []string {
	if !s.Has(p) {
		return nil
	}
	vals := make([]string, len(s.parts[p]))
	copy(vals, s.parts[p])
	return vals
}

// Err returns the first violation recorded by the chaining methods.
func (s *Simple) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Stringify returns the canonical text of s.
func (s *Simple) Stringify() string {
	var b strings.Builder
	render(&b, s)
	return b.String()
}

func (s *Simple) String() string {
	return s.Stringify()
}

var _ Selector = &Simple{}
