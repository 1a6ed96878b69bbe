package pathgraph

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/pathgraph/pkg/pathgraph/config"
	"github.com/randalmurphal/pathgraph/pkg/pathgraph/event"
	"github.com/randalmurphal/pathgraph/pkg/pathgraph/observability"
)

// findConfig holds per-search configuration.
type findConfig struct {
	endStateID          string
	intermediateStateID string

	onProgress func(percent float64)
	onBatch    func(paths []Path)

	token *Token

	batchSize       int
	yieldInterval   time.Duration
	depthMultiplier int

	searchID string
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	tracing  bool
	emitter  *event.Emitter
}

// Tuning defaults. Overridable per call or via config keys (see
// OptionsFromConfig).
const (
	// DefaultBatchSize is the number of newly found paths that triggers a
	// batch callback.
	DefaultBatchSize = 10

	// DefaultYieldInterval is the elapsed time between cooperative
	// checkpoints, where progress is delivered and cancellation observed.
	DefaultYieldInterval = 50 * time.Millisecond

	// DefaultDepthMultiplier bounds recursion depth at
	// len(states) * DefaultDepthMultiplier. Cycle safety already bounds
	// each path; the cap is a secondary guard for pathological graphs.
	DefaultDepthMultiplier = 2
)

// defaultFindConfig returns the default search configuration.
func defaultFindConfig() findConfig {
	return findConfig{
		batchSize:       DefaultBatchSize,
		yieldInterval:   DefaultYieldInterval,
		depthMultiplier: DefaultDepthMultiplier,
		metrics:         observability.NoopMetrics{},
		spans:           observability.NoopSpanManager{},
	}
}

// FindOption configures a FindPaths or FindLoops call.
type FindOption func(*findConfig)

// WithEndState restricts results to paths terminating at the given state ID.
// Without it, FindPaths enumerates paths to terminal states (states with no
// outgoing rules).
func WithEndState(id string) FindOption {
	return func(c *findConfig) {
		c.endStateID = id
	}
}

// WithIntermediateState additionally requires paths to pass through the
// given state ID before reaching the end state. Requires WithEndState;
// FindPaths fails with ErrEndStateRequired otherwise.
func WithIntermediateState(id string) FindOption {
	return func(c *findConfig) {
		c.intermediateStateID = id
	}
}

// WithProgress registers a progress callback. It is invoked at cooperative
// checkpoints (time-throttled, not per node) with an estimate in [0,100].
// Within one search the values are non-decreasing, and a search that
// completes without cancellation delivers exactly 100 as its final value.
func WithProgress(fn func(percent float64)) FindOption {
	return func(c *findConfig) {
		c.onProgress = fn
	}
}

// WithPathBatch registers a batch callback for incremental rendering. Each
// time the accumulated path count crosses a batch-size boundary the callback
// receives a copy of the full accumulated list so far. Successive calls are
// prefix-consistent: earlier paths are never removed or reordered.
func WithPathBatch(fn func(paths []Path)) FindOption {
	return func(c *findConfig) {
		c.onBatch = fn
	}
}

// WithCancelToken attaches a cancellation token. The token is checked at
// every recursive step of FindPaths and once per outer iteration of
// FindLoops. Context cancellation is honored independently of the token.
func WithCancelToken(t *Token) FindOption {
	return func(c *findConfig) {
		c.token = t
	}
}

// WithBatchSize overrides the batch callback threshold. Values < 1 are
// ignored.
func WithBatchSize(n int) FindOption {
	return func(c *findConfig) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithYieldInterval overrides the checkpoint interval. Values <= 0 are
// ignored.
func WithYieldInterval(d time.Duration) FindOption {
	return func(c *findConfig) {
		if d > 0 {
			c.yieldInterval = d
		}
	}
}

// WithDepthMultiplier overrides the recursion depth cap multiplier.
// Values < 1 are ignored.
func WithDepthMultiplier(n int) FindOption {
	return func(c *findConfig) {
		if n > 0 {
			c.depthMultiplier = n
		}
	}
}

// WithSearchID sets the search run identifier used in logs, spans, and
// events. Auto-generated when not set.
func WithSearchID(id string) FindOption {
	return func(c *findConfig) {
		c.searchID = id
	}
}

// WithLogger enables structured logging for the search.
func WithLogger(logger *slog.Logger) FindOption {
	return func(c *findConfig) {
		c.logger = logger
	}
}

// WithMetrics enables metrics recording for the search.
//
//	pathgraph.FindPaths(ctx, states, start,
//	    pathgraph.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) FindOption {
	return func(c *findConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables trace spans for the search.
func WithTracing(sm observability.SpanManager) FindOption {
	return func(c *findConfig) {
		if sm != nil {
			c.spans = sm
			c.tracing = true
		}
	}
}

// WithEmitter streams search lifecycle events (started, path found,
// progress, completed) to the emitter's subscribers. This is the append-only
// alternative to WithPathBatch: subscribers receive each new path once
// instead of the growing accumulated list.
func WithEmitter(em *event.Emitter) FindOption {
	return func(c *findConfig) {
		c.emitter = em
	}
}

// Config keys recognized by OptionsFromConfig.
const (
	ConfigKeyBatchSize       = "batch_size"
	ConfigKeyYieldInterval   = "yield_interval"
	ConfigKeyDepthMultiplier = "max_depth_multiplier"
)

// OptionsFromConfig maps tuning keys from a loaded config file to search
// options. Unrecognized keys are ignored; missing keys keep their defaults.
//
//	cfg, err := config.FromFile("pathgraph.yaml")
//	opts := pathgraph.OptionsFromConfig(cfg)
//	paths, err := pathgraph.FindPaths(ctx, states, start, opts...)
func OptionsFromConfig(cfg config.Config) []FindOption {
	return []FindOption{
		WithBatchSize(cfg.Int(ConfigKeyBatchSize, DefaultBatchSize)),
		WithYieldInterval(cfg.Duration(ConfigKeyYieldInterval, DefaultYieldInterval)),
		WithDepthMultiplier(cfg.Int(ConfigKeyDepthMultiplier, DefaultDepthMultiplier)),
	}
}
