/*
Package codec encodes values to structured text and decodes them back.

Overview

JSON is the default format. Encoding follows the rules of package
encoding/json: struct fields appear in declaration order, slices keep their
element order. Clients who need mappings with a stable key order other than
the declaration order of a struct may use type Object, which remembers the
order in which keys have first been assigned.

Decoding is typed: the type parameter of Decode determines the methods
callable on the result, e.g.

    type Circle struct{ Radius float64 }
    func (c Circle) Area() float64 { … }

    c, err := codec.Decode[Circle](`{"radius":10}`)
    a := c.Area()

Decoding will not check that the text has the shape Circle expects. Fields
not mentioned in the text, or mentioned with an incompatible type, keep
their zero value. Only malformed text is reported, as a *ParseError.

A YAML flavour is available as Format YAML. It accepts exactly the values
JSON accepts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'selkit.codec'.
func tracer() tracing.Trace {
	return tracing.Select("selkit.codec")
}
