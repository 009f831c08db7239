package dom_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/selkit/dom"
	"github.com/npillmayer/selkit/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><body>
<div id="main" class="container draggable">
  <a href="logo.png">Logo</a>
  <a href="index.html">Home</a>
</div>
<table id="data"><tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr></table>
</body></html>`

func TestQueryAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "selkit.dom")
	defer teardown()
	//
	doc, err := dom.ParseHTML(page)
	require.NoError(t, err)
	for _, x := range []struct {
		sel  selector.Selector
		text []string
	}{
		{selector.Element("a").Attr(`href$=".png"`), []string{"Logo"}},
		{selector.ID("main").Class("container").Class("draggable"), []string{"\n  Logo\n  Home\n"}},
		{selector.Combine(
			selector.Element("div").ID("main"),
			selector.AdjacentSibling,
			selector.Element("table").ID("data"),
		), []string{"1234"}},
		{selector.Combine(
			selector.Element("tr").PseudoClass("nth-of-type(even)"),
			selector.Descendant,
			selector.Element("td").PseudoClass("nth-of-type(even)"),
		), []string{"4"}},
		{selector.Combine(selector.Element("tr"), selector.Child, selector.Element("td").PseudoClass("first-child")), []string{"1", "3"}},
		{selector.Combine(selector.Element("a"), selector.GeneralSibling, selector.Element("a")), []string{"Home"}},
	} {
		nodes, err := dom.QueryAll(doc, x.sel)
		require.NoError(t, err, x.sel.Stringify())
		var texts []string
		for _, n := range nodes {
			texts = append(texts, dom.TextContent(n))
		}
		assert.Equal(t, x.text, texts, x.sel.Stringify())
	}
}

func TestQueryFirstAndMatches(t *testing.T) {
	doc, err := dom.ParseHTML(page)
	require.NoError(t, err)
	a, err := dom.QueryFirst(doc, selector.Element("a"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, html.ElementNode, a.Type)
	ok, err := dom.Matches(a, selector.Element("a").Attr("href"))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = dom.Matches(a, selector.Element("td"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, dom.NodeIsText(a.FirstChild))
}

func TestCompileRefusesBrokenSelectors(t *testing.T) {
	_, err := dom.Compile(selector.Class("x").ID("y"))
	var ooo *selector.OutOfOrderSelectorPartError
	assert.True(t, errors.As(err, &ooo), "expected out-of-order error, have %v", err)
	//
	_, err = dom.Compile(selector.Element("p").PseudoClass("no-such-thing"))
	assert.Error(t, err)
	_, err = dom.Compile(nil)
	assert.Error(t, err)
}
