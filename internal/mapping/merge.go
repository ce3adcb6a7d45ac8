package mapping

// Merge applies overrides to generated in place. Each override replaces the
// type and target of the first directive with the same source path; overrides
// matching nothing are appended in input order after all overrides are seen.
func Merge(generated *[]MappingDirective, overrides []MappingDirective) {
	mergeBySource(generated, overrides,
		func(d *MappingDirective) string { return d.SourcePath },
		func(dst *MappingDirective, src MappingDirective) {
			dst.Type = src.Type
			dst.TargetPath = src.TargetPath
		})
}

// MergeTags applies tag overrides to generated in place, with the same
// matching rules as Merge.
func MergeTags(generated *[]Tag, overrides []Tag) {
	mergeBySource(generated, overrides,
		func(t *Tag) string { return t.SourcePath },
		func(dst *Tag, src Tag) {
			dst.Type = src.Type
			dst.TargetPath = src.TargetPath
		})
}

func mergeBySource[T any](generated *[]T, overrides []T, source func(*T) string, apply func(dst *T, src T)) {
	var staged []T

	for i := range overrides {
		override := overrides[i]
		key := source(&override)
		matched := false

		for j := range *generated {
			if source(&(*generated)[j]) == key {
				apply(&(*generated)[j], override)

				matched = true

				break
			}
		}

		if !matched {
			staged = append(staged, override)
		}
	}

	*generated = append(*generated, staged...)
}
