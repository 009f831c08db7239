package selector

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	// empty selector accepts every part
	for p := ElementPart; p < partCount; p++ {
		if lookup(false, 0, p) != accept {
			t.Errorf("expected empty selector to accept %s", p)
		}
	}
	for reached := ElementPart; reached < partCount; reached++ {
		for requested := ElementPart; requested < partCount; requested++ {
			state := int8(reached) + 1
			free, taken := lookup(false, state, requested), lookup(true, state, requested)
			switch {
			case requested < reached && free != outOfOrder:
				t.Errorf("expected %s after %s to be out of order", requested, reached)
			case requested >= reached && free != accept:
				t.Errorf("expected free %s after %s to be accepted", requested, reached)
			}
			switch {
			case requested.Unique() && taken != duplicate:
				t.Errorf("expected second %s after %s to be a duplicate", requested, reached)
			case !requested.Unique() && taken != free:
				t.Errorf("expected repeated %s after %s to move like a first one", requested, reached)
			}
		}
	}
}

// every pair of parts, added in both orders, against the table
func TestSetFollowsTable(t *testing.T) {
	for first := ElementPart; first < partCount; first++ {
		for second := ElementPart; second < partCount; second++ {
			s := &Simple{}
			if err := s.Set(first, "a"); err != nil {
				t.Fatalf("expected %s on empty selector to succeed, have %v", first, err)
			}
			err := s.Set(second, "b")
			var dup *DuplicateSelectorPartError
			var ooo *OutOfOrderSelectorPartError
			switch lookup(first == second, int8(first)+1, second) {
			case accept:
				if err != nil {
					t.Errorf("expected %s after %s to succeed, have %v", second, first, err)
				}
			case duplicate:
				if !errors.As(err, &dup) || dup.Part != second {
					t.Errorf("expected duplicate %s, have %v", second, err)
				}
			case outOfOrder:
				if !errors.As(err, &ooo) || ooo.Part != second || ooo.After != first {
					t.Errorf("expected %s after %s out of order, have %v", second, first, err)
				}
			}
		}
	}
	// occupied element with a later part reached still reports the duplicate
	s := &Simple{}
	_ = s.Set(ElementPart, "a")
	_ = s.Set(IDPart, "x")
	var dup *DuplicateSelectorPartError
	if err := s.Set(ElementPart, "b"); !errors.As(err, &dup) {
		t.Errorf("expected duplicate element, have %v", err)
	}
}

func TestPartNames(t *testing.T) {
	if PseudoElementPart.String() != "pseudo-element" || noPart.String() != "none" {
		t.Errorf("unexpected part names %q, %q", PseudoElementPart, noPart)
	}
	if AttrPart.decorate(`x="y"`) != `[x="y"]` {
		t.Errorf("expected attribute to be bracketed, is %q", AttrPart.decorate(`x="y"`))
	}
}
