package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// nodeYAML is the on-disk form of a node and its subtree.
type nodeYAML struct {
	Name       string      `yaml:"name"`
	Active     *bool       `yaml:"active,omitempty"`
	Wearable   bool        `yaml:"wearable,omitempty"`
	Position   *Vec3       `yaml:"position,omitempty"`
	Rotation   *Quat       `yaml:"rotation,omitempty"`
	Components []Component `yaml:"components,omitempty"`
	Children   []nodeYAML  `yaml:"children,omitempty"`
}

// LoadFile loads and parses a YAML scene file from the given path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Tree.
func Parse(data []byte) (*Tree, error) {
	var root nodeYAML

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if root.Name == "" {
		return nil, errors.New("scene root has no name")
	}

	t := NewTree(root.Name)
	if err := t.fill(t.Root(), &root, root.Name); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) fill(id NodeID, src *nodeYAML, path string) error {
	n := &t.nodes[id]

	if src.Active != nil {
		n.Active = *src.Active
	}

	n.Wearable = src.Wearable

	if src.Position != nil {
		n.Position = *src.Position
	}

	if src.Rotation != nil {
		n.Rotation = *src.Rotation
	}

	n.Components = append(n.Components, src.Components...)

	for i := range src.Children {
		child := &src.Children[i]
		if child.Name == "" {
			return fmt.Errorf("node %s: child %d has no name", path, i)
		}

		cid := t.AddChild(id, child.Name)
		if err := t.fill(cid, child, path+"/"+child.Name); err != nil {
			return err
		}
	}

	return nil
}

// Marshal serializes a Tree to YAML.
func Marshal(t *Tree) ([]byte, error) {
	return yaml.Marshal(t.toYAML(t.Root()))
}

func (t *Tree) toYAML(id NodeID) nodeYAML {
	n := t.nodes[id]
	out := nodeYAML{
		Name:       n.Name,
		Wearable:   n.Wearable,
		Components: n.Components,
	}

	if !n.Active {
		active := false
		out.Active = &active
	}

	if n.Position != (Vec3{}) {
		pos := n.Position
		out.Position = &pos
	}

	if n.Rotation != IdentityRotation {
		rot := n.Rotation
		out.Rotation = &rot
	}

	for _, c := range n.Children {
		out.Children = append(out.Children, t.toYAML(c))
	}

	return out
}
