/*
Package cssom provides access to CSS stylesheets by selector.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in
sub-package douceuradapter.

Clients holding a selector built with package selector may look up the
rules of a stylesheet it is a prelude of:

    sheet, _ := douceuradapter.Parse(`a#x, p { color: red }`)
    rules := cssom.RulesFor(sheet, selector.Element("a").ID("x"))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'selkit.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("selkit.cssom")
}
