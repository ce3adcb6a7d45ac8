// Package plan resolves a wearable armature against an avatar armature and
// produces the ordered mapping directives consumed by the applier.
//
// Resolution pipeline:
//  1. Locate both armatures by name, guessing by containment when the
//     configured name is absent.
//  2. Record precautions about the first bone level of each armature.
//  3. Walk the wearable armature and the avatar armature in lockstep:
//     - Match each wearable bone by normalized name, then by alias groups
//     - Move matched bones without avatar dynamics onto the avatar bone
//     - Let the dynamics policy decide for bones driven by avatar dynamics
//  4. Emit diagnostics (guessed armatures, unmatched bones, ignored dynamics)
//
// PathRemapper turns the resulting directives into a path translation so
// that animations authored against the original hierarchy keep working
// after the move.
package plan
