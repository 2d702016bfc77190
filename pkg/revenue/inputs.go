package revenue

import (
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// Inputs is an immutable snapshot of the calculator controls. Every With*
// and Toggle call returns a new snapshot; the projector is re-run on it.
type Inputs struct {
	Principal float64  `json:"principal"`
	Period    int      `json:"period"`
	Streams   []Stream `json:"streams"`
}

// NewInputs returns a clamped snapshot owning a copy of streams.
func NewInputs(principal float64, period int, streams []Stream) Inputs {
	return Inputs{
		Principal: principal,
		Period:    period,
		Streams:   CopyStreams(streams),
	}.Clamp()
}

// DefaultInputs returns the calculator's initial state.
func DefaultInputs() Inputs {
	return NewInputs(constants.DefaultPrincipal, constants.DefaultPeriodMonths, DefaultStreams())
}

// Clamp bounds the principal to >= 0 and the period to
// [MinPeriodMonths, MaxPeriodMonths].
func (in Inputs) Clamp() Inputs {
	in.Principal = mathutil.NonNegative(in.Principal)
	in.Period = mathutil.ClampInt(in.Period, constants.MinPeriodMonths, constants.MaxPeriodMonths)
	return in
}

// WithPrincipal returns a snapshot with the principal replaced.
func (in Inputs) WithPrincipal(principal float64) Inputs {
	in.Streams = CopyStreams(in.Streams)
	in.Principal = principal
	return in.Clamp()
}

// WithPeriod returns a snapshot with the period replaced.
func (in Inputs) WithPeriod(period int) Inputs {
	in.Streams = CopyStreams(in.Streams)
	in.Period = period
	return in.Clamp()
}

// Toggle returns a snapshot with the stream matching id flipped.
func (in Inputs) Toggle(id string) Inputs {
	in.Streams = ToggleStream(in.Streams, id)
	return in
}

// Project runs the projector over the snapshot.
func (in Inputs) Project() []Point {
	return Project(in.Principal, in.Period, in.Streams)
}
