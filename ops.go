package rope

// Concat concatenates ropes and returns a new rope.
// Concat(a, b, c) is the same as Concat(Concat(a, b), c). Empty ropes are
// identities; no operand is modified.
func Concat(r Rope, others ...Rope) Rope {
	root := r.root
	for _, o := range others {
		root = concat(root, o.root)
	}
	return Rope{root: root}
}

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=b0,...,bi-1 and R2=bi,...,bn.
//
// Split never fails: if i is negative, R1 will be empty; if i is greater than
// the length of the rope, R2 will be empty.
func Split(r Rope, i int) (Rope, Rope) {
	left, right := split(r.root, i)
	return Rope{root: left}, Rope{root: right}
}

// Substr creates a new rope from a subset [i…i+l) of rope.
// Arguments out of range are clamped: a negative l results in the empty rope,
// an l exceeding the end of rope selects everything from i on.
func Substr(r Rope, i, l int) Rope {
	_, rest := split(r.root, i)
	mid, _ := split(rest, l)
	return Rope{root: mid}
}

// SubstrFrom creates a new rope from the tail of rope, starting at position i.
func SubstrFrom(r Rope, i int) Rope {
	return Substr(r, i, r.Len()-i)
}

// Erase returns a new rope with segment [i…i+l) removed.
// Arguments out of range are clamped the same way as for Substr.
func Erase(r Rope, i, l int) Rope {
	rest, _ := Cut(r, i, l)
	return rest
}

// EraseFrom returns a new rope with everything from position i on removed.
func EraseFrom(r Rope, i int) Rope {
	return Erase(r, i, r.Len()-i)
}

// Cut cuts out a substring [i…i+l) from a rope. It returns a new rope
// without the cut-out segment and the cut segment itself.
func Cut(r Rope, i, l int) (Rope, Rope) {
	left, rest := split(r.root, i)
	mid, right := split(rest, l)
	return Rope{root: concat(left, right)}, Rope{root: mid}
}

// Insert inserts a rope c into rope r at position i, resulting in a
// new rope. Positions out of range are clamped to the start or end of r.
func Insert(r Rope, c Rope, i int) Rope {
	if c.IsVoid() {
		return r
	}
	left, right := split(r.root, i)
	return Rope{root: concat(concat(left, c.root), right)}
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
// Arguments are clamped the same way as for Substr.
func (r Rope) Report(i, l int) string {
	return Substr(r, i, l).String()
}
