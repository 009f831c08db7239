/*
Package selkit is a small collection of independent utilities around CSS
selectors and structured data.

    shape     rectangles with computed area
    codec     JSON/YAML encoding and typed decoding
    selector  fluent construction of CSS selector strings
    dom       matching built selectors against HTML parse trees
    cssom     looking up stylesheet rules by built selector

No package keeps global state; each may be used on its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selkit
