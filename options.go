package catread

import (
	"github.com/strainstack/catread/channel"
	"github.com/strainstack/catread/internal/options"
)

// ProgressFunc observes decode progress: done channels out of total. It is
// called once per decoded channel payload and is purely observational; it
// cannot alter decode order or outcome.
type ProgressFunc func(done, total int)

// Option configures Read, ReadFile and NewDecoder.
type Option = options.Option[*config]

type config struct {
	policy     channel.AmbiguityPolicy
	progress   ProgressFunc
	sourceName string
	noResolve  bool
}

func newConfig() *config {
	return &config{
		policy: channel.EarliestDeclared,
	}
}

func applyOptions(cfg *config, opts []Option) error {
	return options.Apply(cfg, opts...)
}

// WithAmbiguityPolicy sets the policy used when several equal-length time
// candidates match one data channel. The default is
// channel.EarliestDeclared. Passing nil defers every ambiguous channel (it
// stays unresolved); an interactive caller can pass a prompting policy
// instead.
func WithAmbiguityPolicy(policy channel.AmbiguityPolicy) Option {
	return options.NoError(func(cfg *config) {
		cfg.policy = policy
	})
}

// WithProgress registers a progress observer for long decodes.
func WithProgress(fn ProgressFunc) Option {
	return options.NoError(func(cfg *config) {
		cfg.progress = fn
	})
}

// WithSourceName overrides the source name recorded on the DecodedFile.
// ReadFile derives it from the file path; Read of an in-memory buffer has no
// natural name without this option.
func WithSourceName(name string) Option {
	return options.NoError(func(cfg *config) {
		cfg.sourceName = name
	})
}

// WithoutResolution decodes channels but skips time resolution and grouping.
// Every channel keeps its initial kind and the group list stays empty.
func WithoutResolution() Option {
	return options.NoError(func(cfg *config) {
		cfg.noResolve = true
	})
}
