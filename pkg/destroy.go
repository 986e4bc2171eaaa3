package holyc

// liveNodes counts Node values allocated by newNode but not yet passed to
// Destroy. Go's garbage collector makes this unnecessary for memory safety;
// it exists so tests can assert the destruction walk reaches everything a
// parse allocated, the GC-language analogue of tinyhcc's free()-based leak
// invariant.
var liveNodes int

// LiveNodes returns the number of nodes allocated and not yet destroyed.
// Meaningful only for leak-checking tests.
func LiveNodes() int { return liveNodes }

// Destroy walks n in post order, recursively destroying every owned child
// before severing n's own references. Destroying the root of a parsed tree
// must bring LiveNodes back to whatever it was before the parse began.
//
// Like tinyhcc's free(), Destroy must be called exactly once per node: a
// second call on an already-destroyed node won't panic (every owned field
// is already nil, so there is nothing left to walk) but will decrement
// LiveNodes an extra time, exactly as a double free() corrupts a C
// allocator's bookkeeping.
func Destroy(n *Node) {
	if n == nil {
		return
	}

	Destroy(n.Left)
	Destroy(n.Right)
	Destroy(n.Init)
	Destroy(n.Body)
	Destroy(n.Else)
	Destroy(n.ForInit)
	Destroy(n.ForCond)
	Destroy(n.ForStep)
	Destroy(n.ForBody)
	Destroy(n.Default)

	for _, c := range n.Args {
		Destroy(c)
	}
	for _, c := range n.Stmts {
		Destroy(c)
	}
	for _, c := range n.Conditions {
		Destroy(c)
	}
	for _, c := range n.Bodies {
		Destroy(c)
	}
	for _, c := range n.Cases {
		Destroy(c)
	}
	for _, c := range n.Fields {
		Destroy(c)
	}

	if n.Type != nil {
		destroyType(n.Type)
		n.Type = nil
	}

	n.Left, n.Right, n.Init, n.Body, n.Else = nil, nil, nil, nil, nil
	n.ForInit, n.ForCond, n.ForStep, n.ForBody, n.Default = nil, nil, nil, nil, nil
	n.Args, n.Stmts, n.Conditions, n.Bodies, n.Cases, n.Fields = nil, nil, nil, nil, nil, nil

	liveNodes--
}

// destroyType releases a type descriptor's owned parameter nodes and nested
// return type. It does not itself track LiveNodes: type descriptors are not
// allocated through newNode.
func destroyType(t *TypeDescriptor) {
	if t.ReturnType != nil {
		destroyType(t.ReturnType)
		t.ReturnType = nil
	}
	for _, p := range t.Parameters {
		Destroy(p)
	}
	t.Parameters = nil
	t.ArrayDims = nil
}
