package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSetCurveReplacesBinding(t *testing.T) {
	c := NewClip("test")
	c.SetCurve("A", GameObjectType, ActiveProperty, Constant(1))
	c.SetCurve("B", GameObjectType, ActiveProperty, Constant(1))
	c.SetCurve("A", GameObjectType, ActiveProperty, Constant(0))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "A", c.Bindings[0].Path)

	v, ok := c.Value("A", GameObjectType, ActiveProperty)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = c.Value("A", GameObjectType, EnabledProperty)
	assert.False(t, ok)
}

func TestCurves(t *testing.T) {
	assert.Equal(t, []Keyframe{{Time: 0, Value: 42}}, Constant(42))
	assert.Equal(t, []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 100}}, Linear(0, 100))
	assert.Equal(t, 1.0, BoolValue(true))
	assert.Equal(t, 0.0, BoolValue(false))
	assert.Equal(t, "blendShape.Smile", BlendshapeProperty("Smile"))
}

func TestMarshalClips(t *testing.T) {
	c := NewClip("Jacket_Wear")
	c.SetCurve("Jacket/Body", GameObjectType, ActiveProperty, Constant(1))

	data, err := Marshal(c, NewClip("Jacket_Unwear"))
	require.NoError(t, err)

	var back []*Clip
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, c, back[0])
	assert.True(t, back[1].IsEmpty())
}
