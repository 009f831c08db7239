package selector

import "fmt"

// DuplicateSelectorPartError is returned if element, id or pseudo-element
// are set a second time on a simple selector.
type DuplicateSelectorPartError struct {
	Part Part
}

func (e *DuplicateSelectorPartError) Error() string {
	return fmt.Sprintf("%s should not occur more than one time inside the selector", e.Part)
}

// OutOfOrderSelectorPartError is returned if a part is added to a simple
// selector which already holds a part canonically following it.
type OutOfOrderSelectorPartError struct {
	Part  Part // the rejected part
	After Part // the latest part present
}

func (e *OutOfOrderSelectorPartError) Error() string {
	return fmt.Sprintf("%s cannot follow %s: selector parts should be arranged in the "+
		"order element, id, class, attribute, pseudo-class, pseudo-element", e.Part, e.After)
}
