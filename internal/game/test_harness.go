package game

// TestSim is a headless simulation harness used by tests and the headless
// runner. It mirrors the live tick loop but has no Ebiten dependency and
// supports deterministic seeding and structured logging.
type TestSim struct {
	Maze    *Maze
	Session *Session
	SimLog  *SimLog
}

// testTickDt is the canonical headless tick: one 60 Hz frame.
const testTickDt = 1.0 / 60.0

type simConfig struct {
	layout  []string
	seed    int64
	verbose bool
}

// SimOption configures a TestSim during construction.
type SimOption func(*simConfig)

// WithLayout replaces the default maze layout. Rows are normalized the same
// way the live loader normalizes them.
func WithLayout(rows ...string) SimOption {
	return func(c *simConfig) { c.layout = rows }
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(c *simConfig) { c.seed = seed }
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return func(c *simConfig) { c.verbose = v }
}

// NewTestSim constructs a harness over the default layout unless overridden.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := simConfig{layout: DefaultLayout, seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := ParseMaze(cfg.layout)
	sl := NewSimLog(cfg.verbose)
	return &TestSim{
		Maze:    m,
		Session: NewSession(m, cfg.seed, sl),
		SimLog:  sl,
	}
}

// SkipCountdown jumps straight into the active phase.
func (ts *TestSim) SkipCountdown() {
	ts.Session.RequestRestart()
}

// RunTicks advances n ticks at the canonical 60 Hz step.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Session.Tick(testTickDt)
	}
}

// StepDt advances a single tick of dt seconds.
func (ts *TestSim) StepDt(dt float64) {
	ts.Session.Tick(dt)
}
