package selector

import "strings"

// Combinator joins two selectors. Any string is accepted and written as is;
// CSS knows the following ones.
type Combinator string

// CSS combinators.
const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

// Combined is a pair of selectors joined by a combinator.
type Combined struct {
	Left       Selector
	Combinator Combinator
	Right      Selector
}

// Combine joins left and right with combinator c. Either side may be a
// combined selector itself.
func Combine(left Selector, c Combinator, right Selector) *Combined {
	tracer().Debugf("selector: combine with %q", c)
	return &Combined{Left: left, Combinator: c, Right: right}
}

// Err returns the first error of the left or right side.
func (c *Combined) Err() error {
	if c == nil {
		return nil
	}
	if c.Left != nil {
		if err := c.Left.Err(); err != nil {
			return err
		}
	}
	if c.Right != nil {
		return c.Right.Err()
	}
	return nil
}

// Stringify returns "left c right".
func (c *Combined) Stringify() string {
	var b strings.Builder
	render(&b, c)
	return b.String()
}

func (c *Combined) String() string {
	return c.Stringify()
}

var _ Selector = &Combined{}

// render writes the canonical text of sel. A nil selector renders as the
// empty string.
func render(b *strings.Builder, sel Selector) {
	switch s := sel.(type) {
	case *Simple:
		if s == nil {
			return
		}
		for p := ElementPart; p < partCount; p++ {
			for _, v := range s.parts[p] {
				b.WriteString(p.decorate(v))
			}
		}
	case *Combined:
		if s == nil {
			return
		}
		render(b, s.Left)
		b.WriteByte(' ')
		b.WriteString(string(s.Combinator))
		b.WriteByte(' ')
		render(b, s.Right)
	case nil:
	default:
		b.WriteString(s.Stringify())
	}
}
