package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Tree holding a single root node with the given value.
// Complexity: O(1).
func New(rootValue string) *Tree {
	return &Tree{nodes: []node{{value: rootValue, parent: Nil}}}
}

// NewNode allocates a node with the given value under parent and returns
// its handle. The child is appended to the parent's ordered children, and
// its back-reference is set in the same step, so the parent/child
// relationship stays mutually consistent by construction.
// Returns ErrInvalidParent if parent is not a live handle.
// Complexity: O(1) amortized.
func (t *Tree) NewNode(value string, parent NodeID) (NodeID, error) {
	if !t.Valid(parent) {
		return Nil, fmt.Errorf("%w: %d", ErrInvalidParent, parent)
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{value: value, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)

	return id, nil
}

// Valid reports whether id names a live node in this arena.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the handle of the root node, or Nil for an empty tree.
// The root is always the first allocated slot.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return Nil
	}

	return 0
}

// Value returns the value stored at id, or "" for an invalid handle.
func (t *Tree) Value(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}

	return t.nodes[id].value
}

// SetValue overwrites the value stored at id; invalid handles are ignored.
func (t *Tree) SetValue(id NodeID, value string) {
	if t.Valid(id) {
		t.nodes[id].value = value
	}
}

// Parent returns the parent handle of id, Nil for the root or an invalid
// handle.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return Nil
	}

	return t.nodes[id].parent
}

// Children returns the ordered child handles of id. The returned slice is
// the arena's own; callers must not mutate it.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}

	return t.nodes[id].children
}

// Path returns the ordered sequence of values from the root down to id
// (the reverse of a parent-walk), or nil for an invalid handle.
// Complexity: O(depth).
func (t *Tree) Path(id NodeID) []string {
	if !t.Valid(id) {
		return nil
	}
	path := []string{}
	for cur := id; cur != Nil; cur = t.nodes[cur].parent {
		path = append(path, t.nodes[cur].value)
	}
	// reverse to get root → node
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// String serializes the tree recursively as "value {childCount child…} ",
// whitespace-delimited. An empty tree serializes to "".
// Complexity: O(n · average value length).
func (t *Tree) String() string {
	root := t.Root()
	if root == Nil {
		return ""
	}
	var sb strings.Builder
	t.write(&sb, root)

	return sb.String()
}

// write emits one node and its subtree in serialized form.
func (t *Tree) write(sb *strings.Builder, id NodeID) {
	n := t.nodes[id]
	fmt.Fprintf(sb, "%s {%d ", n.value, len(n.children))
	for _, child := range n.children {
		t.write(sb, child)
	}
	sb.WriteString("} ")
}

// Parse deserializes the text format produced by String, allocating owned
// children and wiring parent back-references.
//
// Parsing is best-effort, mirroring lenient stream extraction: a missing
// "{" token stops descent and yields that node with no children; a
// malformed child count or a truncated child list likewise stops at the
// last well-formed node. The only hard failure is input with no tokens.
// Callers must validate the structure before trusting it.
func Parse(text string) (*Tree, error) {
	toks := strings.Fields(text)
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	p := parser{toks: toks, t: &Tree{}}
	p.parseNode(Nil)

	return p.t, nil
}

// parser walks the whitespace-delimited token stream.
type parser struct {
	toks []string
	pos  int
	t    *Tree
}

// parseNode consumes one serialized node (and its subtree) and allocates
// it under parent. Returns the new handle, or Nil when the stream is
// exhausted before a value token.
func (p *parser) parseNode(parent NodeID) NodeID {
	// 1. Value token.
	if p.pos >= len(p.toks) {
		return Nil
	}
	value := p.toks[p.pos]
	p.pos++

	// 2. Allocate and wire the back-reference.
	id := NodeID(len(p.t.nodes))
	p.t.nodes = append(p.t.nodes, node{value: value, parent: parent})
	if parent != Nil {
		p.t.nodes[parent].children = append(p.t.nodes[parent].children, id)
	}

	// 3. Opening brace carries the child count: "{N". Absent or malformed
	//    brace ⇒ partially-populated node with no children (lenient).
	if p.pos >= len(p.toks) || !strings.HasPrefix(p.toks[p.pos], "{") {
		return id
	}
	count, err := strconv.Atoi(strings.TrimPrefix(p.toks[p.pos], "{"))
	p.pos++
	if err != nil || count < 0 {
		return id
	}

	// 4. Children, in serialized order. A truncated stream stops descent.
	for i := 0; i < count; i++ {
		if p.parseNode(id) == Nil {
			return id
		}
	}

	// 5. Closing brace, consumed when present; its absence is tolerated.
	if p.pos < len(p.toks) && p.toks[p.pos] == "}" {
		p.pos++
	}

	return id
}
