package shape_test

import (
	"testing"

	"github.com/npillmayer/selkit/shape"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestRectangleArea(t *testing.T) {
	for _, x := range []struct{ w, h, a float64 }{
		{10, 20, 200},
		{0, 5, 0},
		{1.5, 4, 6},
		{-2, 3, -6},
	} {
		r := shape.MakeRectangle(x.w, x.h)
		if r.Width != x.w || r.Height != x.h {
			t.Errorf("expected rectangle %vx%v, have %vx%v", x.w, x.h, r.Width, r.Height)
		}
		if r.Area() != x.a {
			t.Errorf("expected area of %vx%v to be %v, is %v", x.w, x.h, x.a, r.Area())
		}
	}
}

func TestRectangleAreaIsNotStored(t *testing.T) {
	r := shape.MakeRectangle(10, 20)
	r.Width = 3
	if r.Area() != 60 {
		t.Errorf("expected area to follow width change to 60, is %d", r.Area())
	}
}

func TestRectangleDimen(t *testing.T) {
	r := shape.MakeRectangle(2*dimen.PT, 3)
	if r.Area() != 6*dimen.PT {
		t.Errorf("expected area to be %s, is %s", 6*dimen.PT, r.Area())
	}
}
