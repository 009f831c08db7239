/*
Package selector builds CSS selector strings with a fluent API.

Overview

A simple selector consists of up to six kinds of parts, which have to be
given in this order:

    element#id.class[attr]:pseudo-class::pseudo-element
              \----/\----/\----------/
              may occur several times

Element, id and pseudo-element may occur at most once. Clients start a new
simple selector with one of the package level functions and chain further
parts:

    s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
    s.Stringify() // => a[href$=".png"]:focus

Selectors may be combined using a combinator, and combined selectors may be
combined again:

    selector.Combine(
        selector.Element("div").ID("main"),
        selector.Child,
        selector.Combine(selector.Element("p"), selector.Descendant, selector.Element("em")),
    )

Errors

Parts are checked as they are added. A violation is reported by Set
directly. The chaining methods remember the first violation, leave the
selector as it was and ignore every subsequent call; clients check it with
Err(). A violation is one of *DuplicateSelectorPartError and
*OutOfOrderSelectorPartError.

Selectors are not safe for concurrent modification.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'selkit.selector'.
func tracer() tracing.Trace {
	return tracing.Select("selkit.selector")
}
