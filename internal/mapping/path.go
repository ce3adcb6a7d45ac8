package mapping

import (
	"errors"
	"fmt"
	"strings"

	"armature-dresser/internal/common"
	"armature-dresser/internal/match"
	"armature-dresser/internal/scene"
)

// ValidatePath checks the syntax of a slash separated scene path.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}

	if strings.HasPrefix(path, common.PathSeparator) || strings.HasSuffix(path, common.PathSeparator) {
		return fmt.Errorf("invalid path %q: leading or trailing separator", path)
	}

	for seg := range strings.SplitSeq(path, common.PathSeparator) {
		if seg == "" {
			return fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return nil
}

// resolvePath walks path below the tree root. On failure it returns the
// deepest node reached and the first missing segment.
func resolvePath(tree *scene.Tree, path string) (scene.NodeID, string, bool) {
	cur := tree.Root()

	for seg := range strings.SplitSeq(path, common.PathSeparator) {
		next, ok := tree.FindChildExact(cur, seg)
		if !ok {
			return cur, seg, false
		}

		cur = next
	}

	return cur, "", true
}

// suggestPath proposes sibling names for the first missing segment of path.
func suggestPath(tree *scene.Tree, path string) []string {
	parent, missing, ok := resolvePath(tree, path)
	if ok {
		return nil
	}

	prefix := tree.Path(parent, tree.Root())
	names := match.Suggest(missing, tree.ChildNames(parent), 3)

	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, common.JoinPath(prefix, n))
	}

	return out
}
