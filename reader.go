package rope

import "io"

// Reader returns a reader for the bytes of rope.
func (r Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if rr.cursor+l > rr.rope.Len() {
		l = rr.rope.Len() - rr.cursor
		if l <= 0 {
			return 0, io.EOF
		}
	}
	if l == 0 {
		return 0, nil
	}
	// copy fragment by fragment, starting at the leaf containing the cursor
	_, rest := split(rr.rope.root, rr.cursor)
	rest.eachLeaf(0, func(leaf *node, pos int) bool {
		n += copy(p[n:l], leaf.text())
		return n < l
	})
	rr.cursor += n
	return n, nil
}

// WriteTo writes the bytes of the rope to w, fragment by fragment.
// It implements io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	err := r.EachFragment(func(text string, _ int) error {
		n, err := io.WriteString(w, text)
		total += int64(n)
		return err
	})
	return total, err
}

var _ io.WriterTo = Rope{}
