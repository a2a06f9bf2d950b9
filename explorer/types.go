package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/robolab/core"
)

// Sentinel errors for the control loop.
var (
	// ErrNilPlanet is returned by New when no planet is supplied.
	ErrNilPlanet = errors.New("explorer: planet is nil")

	// ErrNilDriver is returned by New when no driver is supplied.
	ErrNilDriver = errors.New("explorer: driver is nil")

	// ErrStepLimit is returned by Run when MaxSteps drives did not finish the mission.
	ErrStepLimit = errors.New("explorer: step limit exceeded")

	// ErrBadMaxSteps is the panic value of WithMaxSteps for a non-positive limit.
	ErrBadMaxSteps = errors.New("explorer: MaxSteps must be positive")
)

// Arrival is what the robot reports after one Drive.
type Arrival struct {
	// Passable is false when the attempted heading could not be driven;
	// the robot is then still where it was and the other fields are zero.
	Passable bool

	// Position is the intersection the robot stopped at.
	Position core.Coordinate

	// Heading is the exit of Position the robot entered through.
	Heading core.Heading

	// Weight is the measured corridor cost, ≥ 1.
	Weight int64

	// Exits lists every heading visible at Position, arrival heading included.
	Exits []core.Heading
}

// Driver moves the robot. Drive blocks until the robot reaches the next
// intersection or gives up on h.
type Driver interface {
	Drive(ctx context.Context, h core.Heading) (Arrival, error)
}

// TargetProvider supplies the current mission target, if any.
// It may be backed by a remote channel and change between calls.
type TargetProvider interface {
	Target() (core.Coordinate, bool)
}

// StaticTarget is a TargetProvider that always answers the same coordinate.
type StaticTarget core.Coordinate

// Target implements TargetProvider.
func (s StaticTarget) Target() (core.Coordinate, bool) { return core.Coordinate(s), true }

// noTarget never has a target.
type noTarget struct{}

func (noTarget) Target() (core.Coordinate, bool) { return core.Coordinate{}, false }

// Outcome is how a mission ended.
type Outcome int

const (
	// MappingComplete: no unexplored heading is reachable and no target was set.
	MappingComplete Outcome = iota
	// TargetReached: the robot stands on the target.
	TargetReached
	// TargetUnreachable: a target is set but exploration finished without a route to it.
	TargetUnreachable
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case MappingComplete:
		return "mapping complete"
	case TargetReached:
		return "target reached"
	case TargetUnreachable:
		return "target unreachable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result summarises a finished Run.
type Result struct {
	Outcome  Outcome
	Position core.Coordinate // where the robot stopped
	Steps    int             // Drive calls issued
	Blocked  int             // headings found impassable
}

// Options configures an Explorer.
type Options struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer // nil keeps metrics unregistered
	Tracer     trace.Tracer
	MaxSteps   int
	Targets    TargetProvider
}

// Option represents a functional option for configuring an Explorer.
type Option func(*Options)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("explorer: WithLogger(nil)")
		}
		o.Logger = l
	}
}

// WithRegisterer registers the explorer metrics with reg. Several explorers
// may share one registerer; they then report into the same collectors.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = reg
	}
}

// WithTracer sets the tracer used for planning spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t == nil {
			panic("explorer: WithTracer(nil)")
		}
		o.Tracer = t
	}
}

// WithMaxSteps bounds the number of Drive calls per Run. Panics if n < 1.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// WithTargets sets the target provider.
func WithTargets(tp TargetProvider) Option {
	return func(o *Options) {
		if tp == nil {
			tp = noTarget{}
		}
		o.Targets = tp
	}
}

// DefaultOptions returns the zero-config explorer settings.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		Tracer:   otel.Tracer("github.com/katalvlaran/robolab/explorer"),
		MaxSteps: 100_000,
		Targets:  noTarget{},
	}
}
