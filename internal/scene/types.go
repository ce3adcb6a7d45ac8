package scene

// NodeID addresses a node inside a Tree. IDs are stable for the lifetime of the Tree.
type NodeID int

// InvalidNode is returned by lookups that find nothing.
const InvalidNode NodeID = -1

// Vec3 is a world-space position (x, y, z).
type Vec3 [3]float64

// Quat is a world-space rotation quaternion (x, y, z, w).
type Quat [4]float64

// IdentityRotation is the rotation of an unrotated node.
var IdentityRotation = Quat{0, 0, 0, 1}

// Node is a single scene node.
type Node struct {
	Name     string
	Parent   NodeID
	Children []NodeID
	// Active is the node's own active flag, independent of its parents.
	Active bool
	// Wearable marks the root of a wearable that has been placed into this tree.
	Wearable bool
	// Position and Rotation are world-space values captured with the snapshot.
	Position   Vec3
	Rotation   Quat
	Components []Component
}

// Component is an opaque component record attached to a node.
type Component struct {
	Type       string         `yaml:"type"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

// Component returns the first component of the given type.
func (n *Node) Component(typ string) (Component, bool) {
	for _, c := range n.Components {
		if c.Type == typ {
			return c, true
		}
	}

	return Component{}, false
}
