package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler configures optional runtime profiling.
//
// Mode selects the profiler to run, and Path specifies the output directory
// where profiling data will be written. Quiet suppresses the profiler's
// startup and shutdown messages.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If build tag pprof or Mode are unset, then Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

type ignore struct{}

func (ignore) Stop() {}
