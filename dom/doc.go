/*
Package dom applies selectors to HTML parse trees.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Selectors built with package selector are plain CSS text. This package
compiles them with https://godoc.org/github.com/andybalholm/cascadia and
matches them against DOM trees as produced by golang.org/x/net/html:

    doc, _ := dom.ParseHTML(`<div id="main"><p class="x">Hello</p></div>`)
    nodes, err := dom.QueryAll(doc, selector.Combine(
        selector.ID("main"), selector.Child, selector.Element("p").Class("x")))

Cascadia matches elements, so selectors carrying a pseudo-element will not
compile.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'selkit.dom'
func tracer() tracing.Trace {
	return tracing.Select("selkit.dom")
}
