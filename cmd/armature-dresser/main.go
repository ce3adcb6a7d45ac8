// Package main provides the CLI entrypoint for armature-dresser.
//
// armature-dresser plans how a wearable rig is dressed onto an avatar rig:
//   - Matches wearable bones to avatar bones and decides how each one follows
//   - Merges user bone mappings from the wearable configuration
//   - Computes where every moved node ends up
//   - Synthesizes the wear and customizable animation clips
//
// Inputs are YAML scene snapshots and a YAML wearable configuration.
package main

import "os"

func main() {
	os.Exit(Execute())
}
