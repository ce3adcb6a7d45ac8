package scene

import (
	"strings"

	"armature-dresser/internal/common"
	"armature-dresser/internal/match"
)

// Tree is an arena of nodes with node 0 as the root.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding a single active root node.
func NewTree(rootName string) *Tree {
	return &Tree{
		nodes: []Node{{
			Name:     rootName,
			Parent:   InvalidNode,
			Active:   true,
			Rotation: IdentityRotation,
		}},
	}
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid reports whether id addresses a node of this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns the node for id, or nil if id is invalid.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Valid(id) {
		return nil
	}

	return &t.nodes[id]
}

// Name returns the node's raw name.
func (t *Tree) Name(id NodeID) string {
	if n := t.Node(id); n != nil {
		return n.Name
	}

	return ""
}

// AddChild appends a new active child to parent and returns its ID.
func (t *Tree) AddChild(parent NodeID, name string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Name:     name,
		Parent:   parent,
		Active:   true,
		Rotation: IdentityRotation,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)

	return id
}

// Ensure returns the node at path below the root, creating missing nodes on the way.
func (t *Tree) Ensure(path string) NodeID {
	cur := t.Root()

	for _, seg := range splitPath(path) {
		next, ok := t.FindChildExact(cur, seg)
		if !ok {
			next = t.AddChild(cur, seg)
		}

		cur = next
	}

	return cur
}

// SetActive sets the node's own active flag.
func (t *Tree) SetActive(id NodeID, active bool) {
	t.nodes[id].Active = active
}

// SetWearable marks the node as a wearable root.
func (t *Tree) SetWearable(id NodeID, wearable bool) {
	t.nodes[id].Wearable = wearable
}

// SetPose sets the node's world position and rotation.
func (t *Tree) SetPose(id NodeID, position Vec3, rotation Quat) {
	t.nodes[id].Position = position
	t.nodes[id].Rotation = rotation
}

// AddComponent attaches a component to the node.
func (t *Tree) AddComponent(id NodeID, c Component) {
	t.nodes[id].Components = append(t.nodes[id].Components, c)
}

// Children returns a snapshot of the node's children in order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}

	out := make([]NodeID, len(n.Children))
	copy(out, n.Children)

	return out
}

// ChildNames returns the raw names of the node's children in order.
func (t *Tree) ChildNames(id NodeID) []string {
	children := t.Children(id)
	names := make([]string, 0, len(children))

	for _, c := range children {
		names = append(names, t.nodes[c].Name)
	}

	return names
}

// Parent returns the parent ID, or InvalidNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}

	return InvalidNode
}

// IsActive returns the node's own active flag.
func (t *Tree) IsActive(id NodeID) bool {
	if n := t.Node(id); n != nil {
		return n.Active
	}

	return false
}

// FindChildExact returns the first child whose raw name equals name.
func (t *Tree) FindChildExact(parent NodeID, name string) (NodeID, bool) {
	for _, c := range t.Children(parent) {
		if t.nodes[c].Name == name {
			return c, true
		}
	}

	return InvalidNode, false
}

// FindChild returns the child matching name. A raw exact match wins; otherwise
// the first child whose normalized name equals the normalized name is returned.
func (t *Tree) FindChild(parent NodeID, name string) (NodeID, bool) {
	if id, ok := t.FindChildExact(parent, name); ok {
		return id, true
	}

	want := match.NormalizeBoneName(name)
	for _, c := range t.Children(parent) {
		if match.NormalizeBoneName(t.nodes[c].Name) == want {
			return c, true
		}
	}

	return InvalidNode, false
}

// Find resolves a slash separated path of exact names below from.
// An empty path resolves to from itself.
func (t *Tree) Find(from NodeID, path string) (NodeID, bool) {
	if !t.Valid(from) {
		return InvalidNode, false
	}

	cur := from

	for _, seg := range splitPath(path) {
		next, ok := t.FindChildExact(cur, seg)
		if !ok {
			return InvalidNode, false
		}

		cur = next
	}

	return cur, true
}

// IsAncestor reports whether ancestor is id itself or one of its parents.
func (t *Tree) IsAncestor(ancestor, id NodeID) bool {
	for cur := id; t.Valid(cur); cur = t.nodes[cur].Parent {
		if cur == ancestor {
			return true
		}
	}

	return false
}

// Path returns the slash separated path from relativeTo (exclusive) down to id.
// If relativeTo is not an ancestor of id, the path is relative to the root.
// The path of a node relative to itself is empty.
func (t *Tree) Path(id, relativeTo NodeID) string {
	if !t.Valid(id) {
		return ""
	}

	if !t.IsAncestor(relativeTo, id) {
		relativeTo = t.Root()
	}

	var segs []string
	for cur := id; cur != relativeTo && t.Valid(cur); cur = t.nodes[cur].Parent {
		segs = append(segs, t.nodes[cur].Name)
	}

	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}

	return strings.Join(segs, common.PathSeparator)
}

// Walk visits from and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (t *Tree) Walk(from NodeID, fn func(id NodeID) bool) {
	if !t.Valid(from) {
		return
	}

	if !fn(from) {
		return
	}

	for _, c := range t.Children(from) {
		t.Walk(c, fn)
	}
}

func splitPath(path string) []string {
	var segs []string

	for _, seg := range strings.Split(path, common.PathSeparator) {
		if seg != "" {
			segs = append(segs, seg)
		}
	}

	return segs
}
