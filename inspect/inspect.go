/*
Package inspect prints the internal structure of ropes to consoles (for
debugging purposes).

Output to terminals is colored, output to other writers is plain text.
*/
package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rope"
	"golang.org/x/term"
)

// maxPreview is the number of bytes of a leaf's text shown in a listing.
const maxPreview = 16

// Print writes an indented listing of the nodes of r to w, one node per line.
// Inner nodes show their length and height, leaves their starting position,
// length and the beginning of their text.
func Print(w io.Writer, r rope.Rope) error {
	inner := color.New(color.FgBlue, color.Bold)
	leaf := color.New(color.FgGreen)
	pos := color.New(color.Faint)
	if !isTerminal(w) {
		inner.DisableColor()
		leaf.DisableColor()
		pos.DisableColor()
	}
	if r.IsVoid() {
		_, err := fmt.Fprintln(w, pos.Sprint("<empty>"))
		return err
	}
	return r.Walk(func(n rope.Node, p int, depth int) error {
		ind := strings.Repeat("  ", depth)
		var err error
		if n.IsLeaf() {
			_, err = fmt.Fprintf(w, "%s%s %s\n", ind, pos.Sprintf("@%d+%d", p, n.Len()),
				leaf.Sprintf("%q", preview(n.Text())))
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", ind, inner.Sprintf("[%d|%d]", n.Len(), n.Height()))
		}
		return err
	})
}

func preview(s string) string {
	if len(s) <= maxPreview {
		return s
	}
	i := maxPreview
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i] + "…"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
