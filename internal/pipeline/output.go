package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"armature-dresser/internal/plan"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Output file names.
const (
	PlanFile       = "plan.yaml"
	RelocationFile = "relocations.yaml"
	AnimationFile  = "animations.yaml"
	// IgnoreFile is only written when avatar dynamics need new ignore entries.
	IgnoreFile     = "ignores.yaml"
)

// OutputFile is a document produced by a run.
type OutputFile struct {
	Filename string
	Content  []byte
}

// Outputs serializes the results present in st.
func (st *State) Outputs() ([]OutputFile, error) {
	var files []OutputFile

	if st.Plan != nil {
		data, err := plan.MarshalPlan(st.Plan)
		if err != nil {
			return nil, err
		}

		files = append(files, OutputFile{Filename: PlanFile, Content: data})
	}

	if st.Remapper != nil {
		data, err := yaml.Marshal(st.Remapper.Relocations())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal relocations: %w", err)
		}

		files = append(files, OutputFile{Filename: RelocationFile, Content: data})

		if ignores := st.Remapper.IgnoreAdditions(); len(ignores) > 0 {
			data, err := yaml.Marshal(ignores)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal ignore additions: %w", err)
			}

			files = append(files, OutputFile{Filename: IgnoreFile, Content: data})
		}
	}

	if st.Animations != nil {
		data, err := yaml.Marshal(st.Animations)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal animations: %w", err)
		}

		files = append(files, OutputFile{Filename: AnimationFile, Content: data})
	}

	return files, nil
}

// WriteFiles writes files to dir, creating it if needed.
func WriteFiles(files []OutputFile, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Filename), f.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", f.Filename, err)
		}
	}

	return nil
}
