package plan

import (
	"io"
	"log/slog"

	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/match"
	"armature-dresser/internal/scene"
)

// WithScanner sets the dynamics scanner.
func WithScanner(s *scene.Scanner) Option {
	return func(r *Resolver) {
		r.scanner = s
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver matches a wearable armature against an avatar armature. The trees
// are only read.
type Resolver struct {
	avatar   *scene.Tree
	wearable *scene.Tree
	aliases  *match.AliasTable
	scanner  *scene.Scanner
	config   ResolutionConfig
	logger   *slog.Logger
}

// NewResolver creates a new Resolver. Without options it owns a fresh alias
// table loaded from the embedded defaults and scans with the default providers.
func NewResolver(avatar, wearable *scene.Tree, config ResolutionConfig, opts ...Option) *Resolver {
	r := &Resolver{
		avatar:   avatar,
		wearable: wearable,
		config:   config,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if r.aliases == nil {
		r.aliases = match.NewAliasTable(match.WithAliasLogger(r.logger))
	}

	if r.scanner == nil {
		r.scanner = scene.NewScanner(r.logger)
	}

	return r
}

// session holds the per-run state of a resolution.
type session struct {
	*Resolver
	res          *diagnostic.Diagnostics
	plan         *Plan
	avatarDyns   []scene.Descriptor
	wearableDyns []scene.Descriptor
}

// Resolve runs the resolution and appends its diagnostics to diags. The plan
// is never nil; Success is false if this run recorded any error.
func (r *Resolver) Resolve(diags *diagnostic.Diagnostics) *Plan {
	res := &diagnostic.Diagnostics{}
	plan := &Plan{}

	defer func() {
		plan.Success = !res.HasErrors()

		if diags != nil {
			diags.Merge(*res)
		}
	}()

	avatarArm, guessed, ok := locateArmature(r.avatar, r.config.AvatarArmatureName)
	if !ok {
		res.AddError(CodeNoArmatureInAvatar, r.config.AvatarArmatureName,
			"no armature %q in avatar %q", r.config.AvatarArmatureName, r.avatar.Name(r.avatar.Root()))

		return plan
	}

	plan.AvatarArmature = r.avatar.Path(avatarArm, r.avatar.Root())
	if guessed {
		res.AddInfo(CodeAvatarArmatureObjectGuessed, plan.AvatarArmature,
			"avatar armature %q not found, guessed %q", r.config.AvatarArmatureName, plan.AvatarArmature)
	}

	wearableArm, guessed, ok := locateArmature(r.wearable, r.config.WearableArmatureName)
	if !ok {
		res.AddError(CodeNoArmatureInWearable, r.config.WearableArmatureName,
			"no armature %q in wearable %q", r.config.WearableArmatureName, r.wearable.Name(r.wearable.Root()))

		return plan
	}

	plan.WearableArmature = r.wearable.Path(wearableArm, r.wearable.Root())
	if guessed {
		res.AddInfo(CodeWearableArmatureObjectGuessed, plan.WearableArmature,
			"wearable armature %q not found, guessed %q", r.config.WearableArmatureName, plan.WearableArmature)
	}

	checkFirstLevel(res, r.avatar, avatarArm, r.wearable, wearableArm)

	s := &session{
		Resolver:     r,
		res:          res,
		plan:         plan,
		avatarDyns:   r.scanner.Scan(r.avatar, r.avatar.Root(), true),
		wearableDyns: r.scanner.Scan(r.wearable, r.wearable.Root(), false),
	}

	r.logger.Debug("resolving armature",
		slog.String("avatar", plan.AvatarArmature),
		slog.String("wearable", plan.WearableArmature),
		slog.String("dynamicsOption", r.config.DynamicsOption.String()),
		slog.Int("avatarDynamics", len(s.avatarDyns)),
		slog.Int("wearableDynamics", len(s.wearableDyns)))

	s.processBone(0, avatarArm, wearableArm)

	r.logger.Debug("armature resolved",
		slog.Int("directives", len(plan.Directives)),
		slog.Int("tags", len(plan.Tags)))

	return plan
}

// matchBone finds the avatar child matching a wearable bone name, first by
// normalized name and then through the alias groups.
func (s *session) matchBone(avatarParent scene.NodeID, name string) (scene.NodeID, bool) {
	if id, ok := s.avatar.FindChild(avatarParent, name); ok {
		return id, true
	}

	for _, alias := range s.aliases.Match(name) {
		if id, ok := s.avatar.FindChild(avatarParent, alias); ok {
			return id, true
		}
	}

	return scene.InvalidNode, false
}

func (s *session) isContainer(id scene.NodeID) bool {
	return match.HasReservedSuffix(s.wearable.Name(id), s.config.ContainerSuffix)
}

func (s *session) emit(typ mapping.DirectiveType, wearableBone, avatarBone scene.NodeID) {
	s.plan.Directives = append(s.plan.Directives, mapping.MappingDirective{
		Type:       typ,
		SourcePath: s.wearable.Path(wearableBone, s.wearable.Root()),
		TargetPath: s.avatar.Path(avatarBone, s.avatar.Root()),
	})
}

func (s *session) processBone(level int, avatarParent, wearableParent scene.NodeID) {
	for _, child := range s.wearable.Children(wearableParent) {
		if s.isContainer(child) {
			continue
		}

		name := s.wearable.Name(child)

		avatarBone, ok := s.matchBone(avatarParent, name)
		if !ok {
			s.recordUnmatched(level, avatarParent, child)
			continue
		}

		avatarDyn := scene.FindWithRoot(s.avatarDyns, avatarBone)
		wearableDyn := scene.FindWithRoot(s.wearableDyns, child)

		option := s.config.DynamicsOption
		if avatarDyn != nil && option == mapping.AutoDynamics {
			option = detectDynamicsOption(s.wearable.Node(child), s.avatar.Node(avatarBone), s.config.PoseEpsilon)
			if option == mapping.IgnoreTransformDynamics {
				s.res.AddInfo(CodeFrankensteinBoneIgnoreTransform, s.wearable.Path(child, s.wearable.Root()),
					"using IgnoreTransform for frankenstein bone %q -> %q",
					s.wearable.Path(child, s.wearable.Root()), s.avatar.Path(avatarBone, s.avatar.Root()))
			}
		}

		d := Decide(avatarDyn, wearableDyn, option)

		s.emit(d.Type, child, avatarBone)

		if d.EmitTag {
			s.plan.Tags = append(s.plan.Tags, mapping.Tag{
				Type:       mapping.TagCopyDynamics,
				SourcePath: s.wearable.Path(child, s.wearable.Root()),
				TargetPath: s.avatar.Path(avatarBone, s.avatar.Root()),
			})
		}

		if d.Code != "" {
			s.res.AddInfo(d.Code, s.wearable.Path(child, s.wearable.Root()),
				"dynamics on %q left as found", s.avatar.Path(avatarBone, s.avatar.Root()))
		}

		switch d.Recursion {
		case RecurseNormal:
			s.processBone(level+1, avatarBone, child)
		case RecurseInherit:
			s.inheritDownwards(d.Type, avatarBone, child)
		case RecurseNone:
		}
	}
}

// inheritDownwards gives every name-matched descendant of wearableParent the
// same directive type. Unmatched descendants are left alone.
func (s *session) inheritDownwards(typ mapping.DirectiveType, avatarParent, wearableParent scene.NodeID) {
	for _, child := range s.wearable.Children(wearableParent) {
		if s.isContainer(child) {
			continue
		}

		avatarBone, ok := s.matchBone(avatarParent, s.wearable.Name(child))
		if !ok {
			continue
		}

		s.emit(typ, child, avatarBone)
		s.inheritDownwards(typ, avatarBone, child)
	}
}

func (s *session) recordUnmatched(level int, avatarParent, wearableBone scene.NodeID) {
	path := s.wearable.Path(wearableBone, s.wearable.Root())
	name := s.wearable.Name(wearableBone)

	if level == 0 {
		s.res.AddWarning(CodeBonesNotMatchingInArmatureFirstLevel, path,
			"bone %q in the wearable armature first level has no match in the avatar armature", name).
			WithSuggestions(match.Suggest(name, s.avatar.ChildNames(avatarParent), 3)...)

		return
	}

	s.res.AddInfo(CodeNonMatchingWearableBoneKeptUntouched, path,
		"bone %q has no avatar match and is kept untouched", name)
}
