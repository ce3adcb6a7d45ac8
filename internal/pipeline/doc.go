// Package pipeline runs a complete dressing plan as an ordered list of stages.
//
// The default stages are:
//
//  1. decode-config: validates the wearable configuration and decodes its modules.
//  2. resolve-armature: matches the wearable armature against the avatar armature.
//  3. merge-overrides: combines generated directives with the user bone mappings.
//  4. build-remapper: derives the post-dressing location of every moved node.
//  5. synthesize-animations: generates the cabinetAnim clips on remapped paths.
//
// Each stage reads the State left by the previous ones and records its own
// diagnostics, which are merged into State.Diagnostics. A stage error stops
// the run; diagnostics collected so far are kept.
package pipeline
