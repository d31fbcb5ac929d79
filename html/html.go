/*
Package html creates ropes from the textual content of HTML.

Every text node of the HTML input becomes one fragment of the resulting rope.
*/
package html

import (
	"io"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// InnerText creates a text rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// The fragment organization of the resulting rope will reflect the text nodes
// of the element node's descendents.
func InnerText(n *html.Node) (rope.Rope, error) {
	if n == nil {
		return rope.Rope{}, rope.ErrIllegalArguments
	}
	b := rope.NewBuilder()
	if err := collectText(n, b); err != nil {
		return rope.Rope{}, err
	}
	return b.Rope(), nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (rope.Rope, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return rope.Rope{}, err
	}
	b := rope.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return rope.Rope{}, err
		}
	}
	return b.Rope(), nil
}

func collectText(n *html.Node, b *rope.Builder) error {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			tracer().Debugf("skipping <%s>", n.Data)
			return nil
		}
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}
