package anim

import (
	"errors"

	"armature-dresser/internal/common"
	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

// Diagnostic codes recorded during synthesis.
const (
	CodeToggleObjectNotFound       = "ToggleObjectNotFound"
	CodeBlendshapeObjectNotFound   = "BlendshapeObjectNotFound"
	CodeNoSkinnedMeshRenderer      = "ObjectHasNoSkinnedMeshRenderer"
	CodeNoMesh                     = "ObjectHasNoMesh"
	CodeNoSuchBlendshape           = "ObjectHasNoSuchBlendshape"
	CodeBlendshapeValueUnavailable = "BlendshapeValueUnavailable"
)

// PathRemap maps a path relative to the avatar root to the path the node has
// once the armature plan is applied.
type PathRemap func(raw string) string

// Identity is the PathRemap of an undressed scene.
func Identity(raw string) string {
	return raw
}

// Synthesize builds the enable and disable clips for a set of toggles and
// blendshape values on tree. Paths are relative to the tree root.
//
// The enable clip holds the requested states. Without writeDefaults the
// disable clip restores the values the tree has now; with writeDefaults it
// has no bindings. Entries whose node cannot be found, or whose blendshape
// cannot be read, are recorded as warnings and left out of both clips.
func Synthesize(
	tree *scene.Tree,
	toggles []mapping.Toggle,
	blendshapes []mapping.BlendshapeValue,
	remap PathRemap,
	writeDefaults bool,
	diags *diagnostic.Diagnostics,
) (enable, disable *Clip) {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	s := synthesizer{remap: remap, writeDefaults: writeDefaults, diags: diags}
	src := side{tree: tree}

	ts := s.captureToggles(src, toggles)
	bs := s.captureBlendshapes(src, blendshapes)

	enable, disable = NewClip("enable"), NewClip("disable")
	s.writeToggles(enable, disable, ts)
	s.writeBlendshapes(enable, disable, bs)

	return enable, disable
}

// side is a tree animated from the avatar root.
type side struct {
	tree *scene.Tree
	// base is the path of the tree root below the avatar root.
	base string
}

func (sd side) find(path string) (scene.NodeID, bool) {
	if sd.tree == nil {
		return scene.InvalidNode, false
	}

	return sd.tree.Find(sd.tree.Root(), path)
}

func (sd side) raw(path string) string {
	return common.JoinPath(sd.base, path)
}

type toggleValue struct {
	path     string
	state    bool
	original bool
}

type blendshapeValue struct {
	path     string
	name     string
	value    float64
	original float64
}

type synthesizer struct {
	remap         PathRemap
	writeDefaults bool
	diags         *diagnostic.Diagnostics
}

func (s *synthesizer) path(raw string) string {
	if s.remap == nil {
		return raw
	}

	return s.remap(raw)
}

// captureToggles reads the current active flags. It runs before anything is
// written so that restore values are never affected by the clips themselves.
func (s *synthesizer) captureToggles(sd side, toggles []mapping.Toggle) []toggleValue {
	out := make([]toggleValue, 0, len(toggles))

	for _, t := range toggles {
		id, ok := sd.find(t.Path)
		if !ok {
			s.diags.AddWarning(CodeToggleObjectNotFound, sd.raw(t.Path),
				"toggle object %q not found, ignored", t.Path)

			continue
		}

		out = append(out, toggleValue{
			path:     s.path(sd.raw(t.Path)),
			state:    t.State,
			original: sd.tree.IsActive(id),
		})
	}

	return out
}

func (s *synthesizer) captureBlendshapes(sd side, blendshapes []mapping.BlendshapeValue) []blendshapeValue {
	out := make([]blendshapeValue, 0, len(blendshapes))

	for _, b := range blendshapes {
		original, ok := s.readBlendshape(sd, b.Path, b.BlendshapeName)
		if !ok {
			continue
		}

		out = append(out, blendshapeValue{
			path:     s.path(sd.raw(b.Path)),
			name:     b.BlendshapeName,
			value:    b.Value,
			original: original,
		})
	}

	return out
}

func (s *synthesizer) readBlendshape(sd side, path, name string) (float64, bool) {
	raw := sd.raw(path)

	id, ok := sd.find(path)
	if !ok {
		s.diags.AddWarning(CodeBlendshapeObjectNotFound, raw,
			"blendshape object %q not found, ignored", path)

		return 0, false
	}

	w, err := sd.tree.BlendshapeWeight(id, name)
	if err == nil {
		return w, true
	}

	switch {
	case errors.Is(err, scene.ErrNoRenderer):
		s.diags.AddWarning(CodeNoSkinnedMeshRenderer, raw,
			"object %q has no skinned mesh renderer, ignored", sd.tree.Name(id))
	case errors.Is(err, scene.ErrNoMesh):
		s.diags.AddWarning(CodeNoMesh, raw,
			"object %q has no mesh attached, ignored", sd.tree.Name(id))
	case errors.Is(err, scene.ErrNoBlendshape):
		s.diags.AddWarning(CodeNoSuchBlendshape, raw,
			"object %q has no blendshape %q, ignored", sd.tree.Name(id), name)
	default:
		s.diags.AddWarning(CodeBlendshapeValueUnavailable, raw,
			"could not read blendshape %q: %v", name, err)
	}

	return 0, false
}

func (s *synthesizer) writeToggles(enable, disable *Clip, values []toggleValue) {
	for _, v := range values {
		enable.SetCurve(v.path, GameObjectType, ActiveProperty, Constant(BoolValue(v.state)))

		if !s.writeDefaults {
			disable.SetCurve(v.path, GameObjectType, ActiveProperty, Constant(BoolValue(v.original)))
		}
	}
}

func (s *synthesizer) writeBlendshapes(enable, disable *Clip, values []blendshapeValue) {
	for _, v := range values {
		prop := BlendshapeProperty(v.name)
		enable.SetCurve(v.path, scene.SkinnedMeshRendererType, prop, Constant(v.value))

		if !s.writeDefaults {
			disable.SetCurve(v.path, scene.SkinnedMeshRendererType, prop, Constant(v.original))
		}
	}
}
