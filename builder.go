package rope

// Builder incrementally stages text fragments and finalizes them into a Rope.
//
// Builder collects fragments and materializes the rope only when Rope() is
// called. The resulting tree is balanced with respect to the number of staged
// fragments, as opposed to ropes built by repeated calls to Concat.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended parts in reverse logical order.
	front []*node
	// back keeps appended parts in logical order.
	back []*node

	done  bool
	dirty bool
	rope  Rope
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder) Rope() Rope {
	if b == nil {
		return Rope{}
	}
	if b.dirty {
		b.rope = Rope{root: balanced(b.orderedParts())}
		b.dirty = false
	}
	b.done = true
	if b.rope.IsVoid() {
		tracer().Debugf("rope builder: rope is void")
	} else {
		tracer().Debugf("rope builder: rope of length %d, depth %d", b.rope.Len(), b.rope.Depth())
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = Rope{}
}

// AppendString appends a text fragment to the staged build.
// The fragment is referenced, not copied.
func (b *Builder) AppendString(text string) error {
	if len(text) == 0 {
		return b.check()
	}
	return b.AppendRope(FromString(text))
}

// PrependString prepends a text fragment to the staged build.
func (b *Builder) PrependString(text string) error {
	if len(text) == 0 {
		return b.check()
	}
	return b.PrependRope(FromString(text))
}

// AppendRope appends a rope to the staged build. The rope's tree is re-used
// as a whole and becomes one part of the balanced result.
func (b *Builder) AppendRope(r Rope) error {
	if err := b.check(); err != nil {
		return err
	}
	if r.IsVoid() {
		return nil
	}
	b.back = append(b.back, r.root)
	b.dirty = true
	return nil
}

// PrependRope prepends a rope to the staged build.
func (b *Builder) PrependRope(r Rope) error {
	if err := b.check(); err != nil {
		return err
	}
	if r.IsVoid() {
		return nil
	}
	b.front = append(b.front, r.root)
	b.dirty = true
	return nil
}

func (b *Builder) check() error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	return nil
}

func (b *Builder) orderedParts() []*node {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]*node, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// balanced concatenates parts into a tree of minimal height with respect
// to the number of parts.
func balanced(parts []*node) *node {
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	}
	mid := len(parts) / 2
	return concat(balanced(parts[:mid]), balanced(parts[mid:]))
}
