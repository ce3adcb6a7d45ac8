package anim

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Binding types and properties understood by the animator.
const (
	GameObjectType          = "GameObject"
	ActiveProperty          = "m_IsActive"
	EnabledProperty         = "m_Enabled"
	BlendshapePropertyStart = "blendShape."
)

// BlendshapeProperty returns the animated property of a named blendshape.
func BlendshapeProperty(name string) string {
	return BlendshapePropertyStart + name
}

// Keyframe is a single value of a curve. Time is in seconds.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Constant returns a single frame curve holding v.
func Constant(v float64) []Keyframe {
	return []Keyframe{{Time: 0, Value: v}}
}

// Linear returns a one second curve going from one value to another.
func Linear(from, to float64) []Keyframe {
	return []Keyframe{{Time: 0, Value: from}, {Time: 1, Value: to}}
}

// BoolValue is the curve value of a boolean property.
func BoolValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// Binding animates one property of one node.
type Binding struct {
	Path     string     `yaml:"path"`
	Type     string     `yaml:"type"`
	Property string     `yaml:"property"`
	Curve    []Keyframe `yaml:"curve"`
}

func (b Binding) String() string {
	return fmt.Sprintf("%s:%s.%s", b.Path, b.Type, b.Property)
}

// Clip is an ordered set of bindings.
type Clip struct {
	Name     string    `yaml:"name"`
	Bindings []Binding `yaml:"bindings"`
}

// NewClip creates an empty clip.
func NewClip(name string) *Clip {
	return &Clip{Name: name, Bindings: []Binding{}}
}

// SetCurve writes a curve for a property. A curve already bound to the same
// property of the same node is replaced in place.
func (c *Clip) SetCurve(path, typ, property string, curve []Keyframe) {
	for i := range c.Bindings {
		b := &c.Bindings[i]
		if b.Path == path && b.Type == typ && b.Property == property {
			b.Curve = curve
			return
		}
	}

	c.Bindings = append(c.Bindings, Binding{Path: path, Type: typ, Property: property, Curve: curve})
}

// Binding returns the binding of a property, if the clip animates it.
func (c *Clip) Binding(path, typ, property string) (Binding, bool) {
	for _, b := range c.Bindings {
		if b.Path == path && b.Type == typ && b.Property == property {
			return b, true
		}
	}

	return Binding{}, false
}

// Value returns the first keyframe value of a bound property.
func (c *Clip) Value(path, typ, property string) (float64, bool) {
	b, ok := c.Binding(path, typ, property)
	if !ok || len(b.Curve) == 0 {
		return 0, false
	}

	return b.Curve[0].Value, true
}

// Len returns the number of bindings.
func (c *Clip) Len() int {
	return len(c.Bindings)
}

// IsEmpty reports whether the clip animates nothing.
func (c *Clip) IsEmpty() bool {
	return len(c.Bindings) == 0
}

// Marshal serializes clips to a YAML document.
func Marshal(clips ...*Clip) ([]byte, error) {
	data, err := yaml.Marshal(clips)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clips: %w", err)
	}

	return data, nil
}
