package selector

// Part is a kind of selector part. Parts are ordered canonically.
type Part int8

// Selector parts in canonical order.
const (
	ElementPart Part = iota
	IDPart
	ClassPart
	AttrPart
	PseudoClassPart
	PseudoElementPart
	partCount
)

// noPart is the state of an empty selector.
const noPart Part = -1

var partNames = [partCount]string{
	"element", "id", "class", "attribute", "pseudo-class", "pseudo-element",
}

func (p Part) String() string {
	if p < 0 || p >= partCount {
		return "none"
	}
	return partNames[p]
}

// Unique reports whether a part may occur at most once per selector.
func (p Part) Unique() bool {
	return p == ElementPart || p == IDPart || p == PseudoElementPart
}

var (
	prefixes = [partCount]string{"", "#", ".", "[", ":", "::"}
	suffixes = [partCount]string{"", "", "", "]", "", ""}
)

func (p Part) decorate(v string) string {
	return prefixes[p] + v + suffixes[p]
}

// --- Transitions -----------------------------------------------------------

type move int8

const (
	accept move = iota
	outOfOrder
	duplicate
)

// transitions[occupied][reached+1][requested] tells whether a part may be
// added to a selector for which the part 'reached' is the latest part set so
// far. occupied is 1 if the requested slot already holds a value.
// Row reached+1 == 0 is the empty selector. A duplicate takes precedence
// over an out-of-order move.
var transitions = buildTransitions()

func buildTransitions() (t [2][partCount + 1][partCount]move) {
	for occupied := 0; occupied < 2; occupied++ {
		for reached := noPart; reached < partCount; reached++ {
			for requested := ElementPart; requested < partCount; requested++ {
				switch {
				case occupied == 1 && requested.Unique():
					t[occupied][reached+1][requested] = duplicate
				case requested < reached:
					t[occupied][reached+1][requested] = outOfOrder
				default:
					t[occupied][reached+1][requested] = accept
				}
			}
		}
	}
	return
}

// lookup returns the move for adding part requested to a selector in state
// (occupied, reached).
func lookup(occupied bool, state int8, requested Part) move {
	o := 0
	if occupied {
		o = 1
	}
	return transitions[o][state][requested]
}
