package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/match"
	"armature-dresser/internal/scene"
)

var (
	// ErrInvalidConfig is returned when the wearable configuration has errors.
	ErrInvalidConfig = errors.New("invalid wearable config")
	// ErrResolutionFailed is returned when the armature could not be resolved.
	ErrResolutionFailed = errors.New("armature resolution failed")
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger passed to every stage.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithAliasTable sets the bone alias table used for matching.
func WithAliasTable(t *match.AliasTable) Option {
	return func(p *Pipeline) {
		p.aliases = t
	}
}

// WithScanner sets the dynamics scanner.
func WithScanner(s *scene.Scanner) Option {
	return func(p *Pipeline) {
		p.scanner = s
	}
}

// WithUniqueToken sets the generator of duplicate name tokens.
func WithUniqueToken(fn func() string) Option {
	return func(p *Pipeline) {
		p.token = fn
	}
}

// WithStages replaces the stage list.
func WithStages(stages ...Stage) Option {
	return func(p *Pipeline) {
		p.stages = stages
	}
}

// Pipeline runs stages over a State.
type Pipeline struct {
	stages  []Stage
	logger  *slog.Logger
	aliases *match.AliasTable
	scanner *scene.Scanner
	token   func() string
}

// New creates a pipeline with the default stages.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.aliases == nil {
		p.aliases = match.NewAliasTable(match.WithAliasLogger(p.logger))
	}

	if p.scanner == nil {
		p.scanner = scene.NewScanner(p.logger)
	}

	if p.stages == nil {
		p.stages = p.DefaultStages()
	}

	return p
}

// Run applies the stages in dependency order. Diagnostics of every stage that
// ran are merged into st.Diagnostics, including the failing one.
func (p *Pipeline) Run(ctx context.Context, st *State) error {
	stages, err := Order(p.stages)
	if err != nil {
		return fmt.Errorf("ordering stages: %w", err)
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		var diags diagnostic.Diagnostics

		err := stage.Apply(ctx, st, &diags)

		diags.Log(ctx, p.logger.With(slog.String("stage", stage.Name)))
		st.Diagnostics.Merge(diags)

		p.logger.Debug("stage finished",
			slog.String("stage", stage.Name),
			slog.Int("diagnostics", diags.Len()),
			slog.Bool("failed", err != nil))

		if err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}
	}

	return nil
}
