// Package mapping provides the bone-mapping directive model, override
// merging, and the YAML wearable configuration that carries user overrides.
//
// A plan is an ordered list of MappingDirective values, one per visited
// wearable bone, plus a list of Tag values for bones that need extra
// handling when the plan is applied.
//
// # Override merging
//
// Merge reconciles user overrides with a generated plan. Overrides are
// matched by source path only: a match rewrites the directive's type and
// target in place, and unmatched overrides are appended in input order.
//
// # Configuration schema
//
// The wearable configuration has the following structure:
//
//	version: "1"
//	avatarConfig:
//	  armatureName: Armature
//	wearableConfig:
//	  armatureName: Armature
//	modules:
//	  - moduleName: armatureMapping
//	    config:
//	      dynamicsOption: auto
//	      mode: override
//	      groupBones: true
//	      boneMappings:
//	        - type: ParentConstraint
//	          sourcePath: Armature/Hips/Tail
//	          targetPath: Armature/Hips
//	  - moduleName: cabinetAnim
//	    config:
//	      writeDefaults: false
//	      avatarAnimationOnWear:
//	        toggles:
//	          - {path: Shoes, state: false}
//
// Module configs are untyped maps in YAML and are decoded into typed
// structs with DecodeModule.
package mapping
