// Package scene provides an immutable-by-convention snapshot of a rigged
// asset's node hierarchy, and discovery of physics-driven bone chains on it.
//
// A Tree is an arena of nodes addressed by stable NodeID indices. Planning
// code only reads a Tree; relocating nodes is left to whatever applies the
// plan.
//
// Trees are built in code (NewTree, AddChild, Ensure) or loaded from YAML:
//
//	name: Avatar
//	children:
//	  - name: Armature
//	    children:
//	      - name: Hips
//	        position: [0, 1, 0]
//	        rotation: [0, 0, 0, 1]
//	        components:
//	          - type: VRCPhysBone
//	            properties:
//	              ignoreTransforms: [Tail/End]
//	  - name: Body
//	    components:
//	      - type: SkinnedMeshRenderer
//	        properties:
//	          mesh: Body
//	          blendShapes: {Shrink_Chest: 0}
package scene
