package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/selkit/selector"
	"golang.org/x/net/html"
)

// Compile compiles a selector for matching. Selectors with a building error
// are refused with this error.
func Compile(sel selector.Selector) (cascadia.Selector, error) {
	if sel == nil {
		return nil, fmt.Errorf("cannot compile nil selector")
	}
	if err := sel.Err(); err != nil {
		return nil, err
	}
	text := sel.Stringify()
	compiled, err := cascadia.Compile(text)
	if err != nil {
		return nil, fmt.Errorf("cannot compile selector %q: %w", text, err)
	}
	tracer().Debugf("compiled selector %q", text)
	return compiled, nil
}

// QueryAll returns all descendants of root matching sel, in document order.
func QueryAll(root *html.Node, sel selector.Selector) ([]*html.Node, error) {
	compiled, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	nodes := compiled.MatchAll(root)
	tracer().Debugf("%d nodes match %q", len(nodes), sel.Stringify())
	return nodes, nil
}

// QueryFirst returns the first descendant of root matching sel, or nil.
func QueryFirst(root *html.Node, sel selector.Selector) (*html.Node, error) {
	compiled, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	return compiled.MatchFirst(root), nil
}

// Matches is a predicate telling if node n matches sel.
func Matches(n *html.Node, sel selector.Selector) (bool, error) {
	compiled, err := Compile(sel)
	if err != nil {
		return false, err
	}
	return compiled.Match(n), nil
}

// ParseHTML parses an HTML document.
func ParseHTML(text string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML: %w", err)
	}
	return doc, nil
}

// NodeIsText is a predicate to match text-nodes of a DOM.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// TextContent returns the text of n and all of its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if NodeIsText(n) {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if n != nil {
		walk(n)
	}
	return b.String()
}
