/*
Package shape provides simple geometric value types.

Rectangles are generic over their unit of measure, so clients may use plain
numbers as well as typographic dimensions:

    r := shape.MakeRectangle(10*dimen.PT, 20*dimen.PT)
    a := r.Area()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shape

// Number is a constraint for the units a rectangle may be measured in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rect is a rectangle of width × height.
// Values are not checked; negative extents are passed through as given.
type Rect[N Number] struct {
	Width  N
	Height N
}

// MakeRectangle creates a rectangle of the given extent.
func MakeRectangle[N Number](width, height N) Rect[N] {
	return Rect[N]{Width: width, Height: height}
}

// Area returns width × height. It is computed on every call and never stored.
func (r Rect[N]) Area() N {
	return r.Width * r.Height
}
