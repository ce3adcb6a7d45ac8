package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "MoveToBone", MoveToBone.String())
	assert.Equal(t, "CopyDynamics", TagCopyDynamics.String())
	assert.Equal(t, "Override", ModeOverride.String())
	assert.Equal(t, "IgnoreTransform", IgnoreTransformDynamics.String())
	assert.Equal(t, "Auto", AutoDynamics.String())
	assert.Equal(t, "Blendshape", CustomizableBlendshape.String())
	assert.Equal(t, "DirectiveType(9)", DirectiveType(9).String())
}

func TestParseDynamicsOption(t *testing.T) {
	tests := []struct {
		in   string
		want DynamicsOption
	}{
		{"RemoveDynamicsAndUseParentConstraint", RemoveDynamicsAndUseParentConstraint},
		{"keepdynamicsanduseparentconstraintifnecessary", KeepDynamicsAndUseParentConstraintIfNecessary},
		{"ignoreTransform", IgnoreTransformDynamics},
		{" CopyDynamics ", CopyDynamicsOption},
		{"IGNOREALL", IgnoreAllDynamics},
		{"auto", AutoDynamics},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDynamicsOption(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDynamicsOption("destroy")
	assert.ErrorContains(t, err, "expected one of")
}

func TestDirectiveYAML(t *testing.T) {
	d := MappingDirective{Type: ParentConstraint, SourcePath: "Armature/Hips", TargetPath: "Armature/Hips"}

	data, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: ParentConstraint")

	var back MappingDirective
	require.NoError(t, yaml.Unmarshal([]byte("type: ignoretransform\nsourcePath: A\ntargetPath: B\n"), &back))
	assert.Equal(t, MappingDirective{Type: IgnoreTransform, SourcePath: "A", TargetPath: "B"}, back)

	err = yaml.Unmarshal([]byte("type: Teleport\n"), &back)
	assert.Error(t, err)

	_, err = yaml.Marshal(MappingDirective{Type: DirectiveType(42)})
	assert.Error(t, err)
}

func TestDirectiveString(t *testing.T) {
	d := MappingDirective{Type: MoveToBone, SourcePath: "Armature/Hips", TargetPath: "Armature/Pelvis"}
	assert.Equal(t, "MoveToBone: Armature/Hips -> Armature/Pelvis", d.String())

	tag := Tag{Type: TagCopyDynamics, SourcePath: "A", TargetPath: "B"}
	assert.Equal(t, "CopyDynamics: A -> B", tag.String())
}
