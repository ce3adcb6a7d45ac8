package anim

import (
	"io"
	"log/slog"

	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the generator logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithScanner sets the scanner used to find the wearable dynamics.
func WithScanner(scanner *scene.Scanner) Option {
	return func(g *Generator) {
		g.scanner = scanner
	}
}

// ToggleClips is the clip pair of a toggle customizable.
type ToggleClips struct {
	Name    string `yaml:"name"`
	Enable  *Clip  `yaml:"enable"`
	Disable *Clip  `yaml:"disable"`
}

// BlendshapeClip is the clip of a blendshape customizable. Its curves run
// from 0 to 100 so that the animator can drive it with a single parameter.
type BlendshapeClip struct {
	Name string `yaml:"name"`
	Clip *Clip  `yaml:"clip"`
}

// Generator synthesizes the clips of a cabinetAnim module for a wearable that
// sits at wearableBase below the avatar root.
type Generator struct {
	avatar       side
	wearable     side
	config       mapping.CabinetAnimConfig
	remap        PathRemap
	scanner      *scene.Scanner
	logger       *slog.Logger
	wearableName string
}

// NewGenerator creates a generator. remap may be nil for an undressed scene.
func NewGenerator(avatar, wearable *scene.Tree, wearableBase string, cfg mapping.CabinetAnimConfig, remap PathRemap, opts ...Option) *Generator {
	g := &Generator{
		avatar:   side{tree: avatar},
		wearable: side{tree: wearable, base: wearableBase},
		config:   cfg,
		remap:    remap,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.scanner == nil {
		g.scanner = scene.NewScanner(g.logger)
	}

	g.wearableName = wearableBase
	if wearable != nil {
		g.wearableName = wearable.Name(wearable.Root())
	}

	return g
}

func (g *Generator) synthesizer(diags *diagnostic.Diagnostics) *synthesizer {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	return &synthesizer{remap: g.remap, writeDefaults: g.config.WriteDefaults, diags: diags}
}

// WearAnimations returns the clips applied when the wearable is worn and
// taken off.
func (g *Generator) WearAnimations(diags *diagnostic.Diagnostics) (enable, disable *Clip) {
	s := g.synthesizer(diags)
	onWear := g.config.AvatarAnimationOnWear
	wearableOnWear := g.config.WearableAnimationOnWear

	avatarToggles := s.captureToggles(g.avatar, onWear.Toggles)
	wearableToggles := s.captureToggles(g.wearable, wearableOnWear.Toggles)
	avatarBlendshapes := s.captureBlendshapes(g.avatar, onWear.Blendshapes)
	wearableBlendshapes := s.captureBlendshapes(g.wearable, wearableOnWear.Blendshapes)

	enable = NewClip(g.wearableName + "_Wear")
	disable = NewClip(g.wearableName + "_Unwear")

	s.writeToggles(enable, disable, avatarToggles)
	s.writeToggles(enable, disable, wearableToggles)

	if g.config.SetWearableDynamicsInactive {
		g.writeDynamics(s, enable, disable)
	}

	s.writeBlendshapes(enable, disable, avatarBlendshapes)
	s.writeBlendshapes(enable, disable, wearableBlendshapes)

	g.logger.Debug("synthesized wear animations",
		slog.String("wearable", g.wearableName),
		slog.Int("enable", enable.Len()),
		slog.Int("disable", disable.Len()))

	return enable, disable
}

// writeDynamics enables the wearable dynamics while worn. Several components
// on the same node share one curve.
func (g *Generator) writeDynamics(s *synthesizer, enable, disable *Clip) {
	if g.wearable.tree == nil {
		return
	}

	visited := map[scene.NodeID]struct{}{}

	for _, d := range g.scanner.Scan(g.wearable.tree, g.wearable.tree.Root(), true) {
		if _, ok := visited[d.Owner]; ok {
			continue
		}

		visited[d.Owner] = struct{}{}

		path := s.path(g.wearable.raw(d.OwnerPath))
		enable.SetCurve(path, d.ComponentType, EnabledProperty, Constant(1))

		if !s.writeDefaults {
			disable.SetCurve(path, d.ComponentType, EnabledProperty, Constant(0))
		}
	}
}

// CustomizableToggleAnimations returns a clip pair per customizable. Every
// customizable gets its avatar toggles and blendshapes; toggle customizables
// also get their wearable ones.
func (g *Generator) CustomizableToggleAnimations(diags *diagnostic.Diagnostics) []ToggleClips {
	out := make([]ToggleClips, 0, len(g.config.WearableCustomizables))

	for _, c := range g.config.WearableCustomizables {
		s := g.synthesizer(diags)

		avatarToggles := s.captureToggles(g.avatar, c.AvatarToggles)
		avatarBlendshapes := s.captureBlendshapes(g.avatar, c.AvatarBlendshapes)

		var (
			wearableToggles     []toggleValue
			wearableBlendshapes []blendshapeValue
		)

		if c.Type == mapping.CustomizableToggle {
			wearableBlendshapes = s.captureBlendshapes(g.wearable, c.WearableBlendshapes)
			wearableToggles = s.captureToggles(g.wearable, c.WearableToggles)
		}

		enable, disable := NewClip(c.Name+"_On"), NewClip(c.Name+"_Off")

		s.writeToggles(enable, disable, avatarToggles)
		s.writeBlendshapes(enable, disable, avatarBlendshapes)
		s.writeBlendshapes(enable, disable, wearableBlendshapes)
		s.writeToggles(enable, disable, wearableToggles)

		out = append(out, ToggleClips{Name: c.Name, Enable: enable, Disable: disable})
	}

	return out
}

// CustomizableBlendshapeAnimations returns a clip per blendshape customizable
// animating each of its wearable blendshapes linearly from 0 to 100.
func (g *Generator) CustomizableBlendshapeAnimations(diags *diagnostic.Diagnostics) []BlendshapeClip {
	var out []BlendshapeClip

	for _, c := range g.config.WearableCustomizables {
		if c.Type != mapping.CustomizableBlendshape {
			continue
		}

		s := g.synthesizer(diags)
		clip := NewClip(c.Name)

		for _, b := range c.WearableBlendshapes {
			if _, ok := s.readBlendshape(g.wearable, b.Path, b.BlendshapeName); !ok {
				continue
			}

			clip.SetCurve(s.path(g.wearable.raw(b.Path)), scene.SkinnedMeshRendererType,
				BlendshapeProperty(b.BlendshapeName), Linear(0, 100))
		}

		out = append(out, BlendshapeClip{Name: c.Name, Clip: clip})
	}

	return out
}
