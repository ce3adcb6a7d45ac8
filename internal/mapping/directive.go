package mapping

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=DirectiveType,TagType,MappingMode,DynamicsOption,CustomizableType -linecomment -output=enum_string.go

// DirectiveType is how a wearable bone is related to the avatar.
type DirectiveType int

const (
	// DoNothing leaves the wearable bone where it is.
	DoNothing DirectiveType = iota
	// MoveToBone reparents the wearable bone under the avatar bone.
	MoveToBone
	// ParentConstraint makes the wearable bone follow the avatar bone.
	ParentConstraint
	// IgnoreTransform places the wearable bone under an exclusion container
	// of the avatar bone so the avatar dynamics skip it.
	IgnoreTransform
	// CopyDynamics duplicates the avatar dynamics onto the wearable bone.
	CopyDynamics
)

// MarshalText implements encoding.TextMarshaler.
func (t DirectiveType) MarshalText() ([]byte, error) {
	return marshalEnum(t, DoNothing, CopyDynamics)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DirectiveType) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, t, DoNothing, CopyDynamics)
}

// MappingDirective is the plan entry for one wearable bone. Paths are
// relative to the wearable and avatar roots respectively.
type MappingDirective struct {
	Type       DirectiveType `yaml:"type" mapstructure:"type"`
	SourcePath string        `yaml:"sourcePath" mapstructure:"sourcePath"`
	TargetPath string        `yaml:"targetPath" mapstructure:"targetPath"`
}

func (d MappingDirective) String() string {
	return fmt.Sprintf("%s: %s -> %s", d.Type, d.SourcePath, d.TargetPath)
}

// TagType marks extra handling needed on a wearable bone.
type TagType int

const (
	TagDoNothing       TagType = iota // DoNothing
	TagIgnoreTransform                // IgnoreTransform
	TagCopyDynamics                   // CopyDynamics
)

// MarshalText implements encoding.TextMarshaler.
func (t TagType) MarshalText() ([]byte, error) {
	return marshalEnum(t, TagDoNothing, TagCopyDynamics)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TagType) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, t, TagDoNothing, TagCopyDynamics)
}

// Tag is emitted alongside directives for bones whose dynamics must be
// duplicated rather than moved.
type Tag struct {
	Type       TagType `yaml:"type" mapstructure:"type"`
	SourcePath string  `yaml:"sourcePath" mapstructure:"sourcePath"`
	TargetPath string  `yaml:"targetPath" mapstructure:"targetPath"`
}

func (t Tag) String() string {
	return fmt.Sprintf("%s: %s -> %s", t.Type, t.SourcePath, t.TargetPath)
}

// MappingMode controls how generated directives and user overrides combine.
type MappingMode int

const (
	// ModeAuto uses the generated directives only.
	ModeAuto MappingMode = iota // Auto
	// ModeOverride merges the overrides into the generated directives.
	ModeOverride // Override
	// ModeManual uses the overrides only; nothing is generated.
	ModeManual // Manual
)

// MarshalText implements encoding.TextMarshaler.
func (m MappingMode) MarshalText() ([]byte, error) {
	return marshalEnum(m, ModeAuto, ModeManual)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MappingMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, m, ModeAuto, ModeManual)
}

// DynamicsOption selects how avatar-side dynamics conflicts are handled.
type DynamicsOption int

const (
	RemoveDynamicsAndUseParentConstraint DynamicsOption = iota
	KeepDynamicsAndUseParentConstraintIfNecessary
	IgnoreTransformDynamics // IgnoreTransform
	CopyDynamicsOption      // CopyDynamics
	IgnoreAllDynamics       // IgnoreAll
	// AutoDynamics picks IgnoreTransform for bones whose pose differs from
	// the avatar and RemoveDynamicsAndUseParentConstraint otherwise.
	AutoDynamics // Auto
)

// MarshalText implements encoding.TextMarshaler.
func (o DynamicsOption) MarshalText() ([]byte, error) {
	return marshalEnum(o, RemoveDynamicsAndUseParentConstraint, AutoDynamics)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *DynamicsOption) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, o, RemoveDynamicsAndUseParentConstraint, AutoDynamics)
}

// ParseDynamicsOption parses a dynamics option name, case-insensitively.
func ParseDynamicsOption(s string) (DynamicsOption, error) {
	var o DynamicsOption

	err := o.UnmarshalText([]byte(s))

	return o, err
}

type enum interface {
	~int
	fmt.Stringer
}

func marshalEnum[E enum](v, first, last E) ([]byte, error) {
	if v < first || v > last {
		return nil, fmt.Errorf("invalid %T value %d", v, int(v))
	}

	return []byte(v.String()), nil
}

// unmarshalEnum matches text case-insensitively against the String names of
// first..last.
func unmarshalEnum[E enum](text []byte, out *E, first, last E) error {
	s := strings.TrimSpace(string(text))

	for v := first; v <= last; v++ {
		if strings.EqualFold(v.String(), s) {
			*out = v
			return nil
		}
	}

	names := make([]string, 0, int(last-first)+1)
	for v := first; v <= last; v++ {
		names = append(names, v.String())
	}

	return fmt.Errorf("invalid %T %q, expected one of: %s", *out, s, strings.Join(names, ", "))
}
