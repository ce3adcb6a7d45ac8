package plan

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

func remapDirectives() []mapping.MappingDirective {
	return []mapping.MappingDirective{
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips", TargetPath: "Armature/Hips"},
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips/Spine", TargetPath: "Armature/Hips/Spine"},
		{Type: mapping.ParentConstraint, SourcePath: "Armature/Hips/Tail", TargetPath: "Armature/Hips/Tail"},
		{Type: mapping.IgnoreTransform, SourcePath: "Armature/Hips/Ear", TargetPath: "Armature/Head/Ear"},
		{Type: mapping.DoNothing, SourcePath: "Armature/Hips/Skirt", TargetPath: "Armature/Hips/Skirt"},
	}
}

func TestRemapGrouped(t *testing.T) {
	r := NewPathRemapper(nil, "Jacket", remapDirectives(), Layout{GroupBones: true})

	tests := []struct {
		raw  string
		want string
	}{
		{"Jacket/Armature/Hips", "Armature/Hips/Hips_DT/Hips"},
		{"Jacket/Armature/Hips/Spine", "Armature/Hips/Spine/Spine_DT/Spine"},
		{"Jacket/Armature/Hips/Spine/Chest", "Armature/Hips/Spine/Spine_DT/Spine/Chest"},
		{"Jacket/Armature/Hips/Tail/Tip", "Armature/Hips/Hips_DT/Hips/Tail/Tip"},
		{"Jacket/Armature/Hips/Skirt", "Armature/Hips/Hips_DT/Hips/Skirt"},
		{"Jacket/Armature/Hips/Ear/Tip", "Armature/Head/Ear/Ear_DBExcluded/Ear/Tip"},
		{"Jacket/Armature/HipsExtra", "Jacket/Armature/HipsExtra"},
		{"Jacket/Body", "Jacket/Body"},
		{"Body", "Body"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Remap(tt.raw))
			assert.Equal(t, r.Remap(tt.raw), r.Remap(tt.raw))
		})
	}

	assert.Len(t, r.Relocations(), 3)
}

func TestRemapUngroupedWithDecorations(t *testing.T) {
	directives := []mapping.MappingDirective{
		{Type: mapping.MoveToBone, SourcePath: "Armature/(Old) Hips", TargetPath: "Armature/Hips"},
		{Type: mapping.IgnoreTransform, SourcePath: "Armature/(Old) Hips/Ear", TargetPath: "Armature/Hips/Ear"},
	}

	r := NewPathRemapper(nil, "", directives, Layout{Prefix: "(J) ", Suffix: " (x)"})

	assert.Equal(t, "Armature/Hips/(J) Hips (x)", r.Remap("Armature/(Old) Hips"))
	assert.Equal(t, "Armature/Hips/Ear/(J) Ear (x)/Tip", r.Remap("Armature/(Old) Hips/Ear/Tip"))
}

func TestRemapDuplicateNames(t *testing.T) {
	avatar := scene.NewTree("Avatar")
	avatar.Ensure("Armature/Hips/Hips_DT/Hips")

	directives := []mapping.MappingDirective{
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips", TargetPath: "Armature/Hips"},
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips/Spine", TargetPath: "Armature/Hips"},
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips/Other/Spine", TargetPath: "Armature/Hips"},
	}

	t.Run("prevented", func(t *testing.T) {
		n := 0
		r := NewPathRemapper(avatar, "Jacket", directives,
			Layout{GroupBones: true, PreventDuplicateNames: true},
			WithUniqueToken(func() string {
				n++
				return strings.Repeat("x", n)
			}))

		rel := r.Relocations()
		require.Len(t, rel, 3)
		assert.Equal(t, "Armature/Hips/Hips_DT/Hips@x", rel[0].To, "taken in the avatar")
		assert.Equal(t, "Armature/Hips/Hips_DT/Spine", rel[1].To)
		assert.Equal(t, "Armature/Hips/Hips_DT/Spine@xx", rel[2].To, "taken earlier in the plan")
	})

	t.Run("allowed", func(t *testing.T) {
		r := NewPathRemapper(avatar, "Jacket", directives, Layout{GroupBones: true})
		assert.Equal(t, "Armature/Hips/Hips_DT/Hips", r.Remap("Jacket/Armature/Hips"))
	})

	t.Run("default token is a uuid", func(t *testing.T) {
		r := NewPathRemapper(avatar, "Jacket", directives[:1], Layout{GroupBones: true, PreventDuplicateNames: true})

		to := r.Remap("Jacket/Armature/Hips")
		at := strings.LastIndex(to, "@")
		require.NotEqual(t, -1, at)

		_, err := uuid.Parse(to[at+1:])
		assert.NoError(t, err)
	})
}

func TestRemapFromResolvedPlan(t *testing.T) {
	avatar := humanoid("Avatar")
	wearable := humanoid("Jacket")

	p, _ := resolveWith(t, avatar, wearable, mapping.AutoDynamics)
	r := NewPathRemapper(avatar, "Jacket", p.Directives, Layout{GroupBones: true})

	assert.Equal(t, "Armature/Hips/Spine/Chest/Neck/Head/Head_DT/Head", r.Remap("Jacket/Armature/Hips/Spine/Chest/Neck/Head"))
	assert.Equal(t, "Jacket/Armature", r.Remap("Jacket/Armature"))
}

func TestLayoutFrom(t *testing.T) {
	cfg := mapping.DefaultArmatureMappingConfig()
	cfg.Prefix = "p"
	cfg.PreventDuplicateNames = true

	assert.Equal(t, Layout{GroupBones: true, Prefix: "p", PreventDuplicateNames: true}, LayoutFrom(cfg))
}

func TestRemapIgnoreAdditions(t *testing.T) {
	avatar := scene.NewTree("Avatar")
	avatar.Ensure("Armature/Hips")
	avatar.AddComponent(avatar.Ensure("Armature/Head/Ear"), scene.Component{Type: scene.DynamicBoneType})
	avatar.AddComponent(avatar.Ensure("Armature/Head"), scene.Component{
		Type:       scene.PhysBoneType,
		Properties: map[string]any{"rootTransform": "Ear"},
	})

	dyns := scene.NewScanner(nil).Scan(avatar, avatar.Root(), true)
	require.Len(t, dyns, 2)
	require.Equal(t, scene.PhysBoneType, dyns[0].ComponentType)

	directives := []mapping.MappingDirective{
		{Type: mapping.MoveToBone, SourcePath: "Armature/Hips", TargetPath: "Armature/Hips"},
		{Type: mapping.IgnoreTransform, SourcePath: "Armature/Hips/Ear", TargetPath: "Armature/Head/Ear"},
		{Type: mapping.IgnoreTransform, SourcePath: "Armature/Hips/EarL", TargetPath: "Armature/Head/Ear"},
		{Type: mapping.IgnoreTransform, SourcePath: "Armature/Hips/Tail", TargetPath: "Armature/Hips"},
	}

	t.Run("grouped", func(t *testing.T) {
		r := NewPathRemapper(avatar, "Jacket", directives, Layout{GroupBones: true}, WithAvatarDynamics(dyns))

		container := "Armature/Head/Ear/Ear_DBExcluded"
		assert.Equal(t, []IgnoreAddition{
			{Owner: "Armature/Head", ComponentType: scene.PhysBoneType, Path: container},
			{Owner: "Armature/Head/Ear", ComponentType: scene.DynamicBoneType, Path: container},
		}, r.IgnoreAdditions())
	})

	t.Run("ungrouped", func(t *testing.T) {
		r := NewPathRemapper(avatar, "Jacket", directives[:2], Layout{}, WithAvatarDynamics(dyns[:1]))

		assert.Equal(t, []IgnoreAddition{
			{Owner: "Armature/Head", ComponentType: scene.PhysBoneType, Path: "Armature/Head/Ear/Ear"},
		}, r.IgnoreAdditions())
	})

	t.Run("already ignored", func(t *testing.T) {
		skipping := []scene.Descriptor{dyns[0]}
		skipping[0].IgnoreSubpaths = []string{"*_DBExcluded"}

		r := NewPathRemapper(avatar, "Jacket", directives, Layout{GroupBones: true}, WithAvatarDynamics(skipping))
		assert.Empty(t, r.IgnoreAdditions())
	})

	t.Run("without dynamics", func(t *testing.T) {
		r := NewPathRemapper(avatar, "Jacket", directives, Layout{GroupBones: true})
		assert.Empty(t, r.IgnoreAdditions())
	})
}
