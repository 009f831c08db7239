package cssom

import (
	"strings"

	"github.com/npillmayer/selkit/selector"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude of the rule
	Group() []string         // the prelude split into selectors
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) Property   // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// RulesFor returns the rules of sheet having sel as one of their selectors,
// in stylesheet order. Selectors are compared as text, with runs of
// whitespace treated as a single blank.
func RulesFor(sheet StyleSheet, sel selector.Selector) []Rule {
	if sheet == nil || sel == nil || sel.Err() != nil {
		return nil
	}
	want := Normalize(sel.Stringify())
	var rules []Rule
	for _, r := range sheet.Rules() {
		for _, s := range r.Group() {
			if Normalize(s) == want {
				rules = append(rules, r)
				break
			}
		}
	}
	tracer().Debugf("%d rules for selector %q", len(rules), want)
	return rules
}

// PropertyFor returns the value of a property for sel. If several rules
// set the property, an important one wins over a normal one, and later rules
// win over earlier ones. Specificity is not considered, as all candidate
// rules share the same selector.
func PropertyFor(sheet StyleSheet, sel selector.Selector, key string) Property {
	p, important := NullStyle, false
	for _, r := range RulesFor(sheet, sel) {
		v := r.Value(key)
		if v.IsEmpty() || (important && !r.IsImportant(key)) {
			continue
		}
		p, important = v, r.IsImportant(key)
	}
	return p
}

// Normalize collapses whitespace in a selector text.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
