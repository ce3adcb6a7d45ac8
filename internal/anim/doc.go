// Package anim synthesizes the animation clips that switch a wearable on and
// off on an avatar.
//
// A wear animation is a pair of clips. The enable clip applies the configured
// object toggles and blendshape weights. The disable clip restores the values
// the scene had before the wearable was applied, or carries no binding for a
// property when write defaults are on, in which case the animator restores it.
//
// Every path written to a clip is relative to the avatar root and is passed
// through a PathRemap first, so that nodes the armature plan relocates keep
// their animations:
//
//	remapper := plan.NewPathRemapper(avatar, "Jacket", p.Directives, layout)
//	enable, disable := anim.Synthesize(avatar, toggles, blendshapes, remapper.Remap, false, diags)
//
// Clips serialize to YAML:
//
//	name: Jacket_Wear
//	bindings:
//	  - path: Jacket/Body
//	    type: GameObject
//	    property: m_IsActive
//	    curve:
//	      - time: 0
//	        value: 1
package anim
