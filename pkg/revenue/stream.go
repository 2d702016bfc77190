// Package revenue provides the staking revenue projection: revenue streams,
// the month-by-month compounding projector and the summaries derived from it.
package revenue

// Stream is a named revenue source. MonthlyBase is the fraction of the
// principal paid in month 0 and GrowthRate the per-month multiplier applied
// compoundingly from there.
type Stream struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	MonthlyBase float64 `json:"monthlyBase" yaml:"monthlyBase"`
	GrowthRate  float64 `json:"growthRate" yaml:"growthRate"`
	Icon        string  `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// StakePresets are the quick-pick principal amounts.
var StakePresets = []float64{1000, 5000, 10000, 50000}

// DefaultStreams returns the platform's stream set with inference and GPU
// enabled.
func DefaultStreams() []Stream {
	return []Stream{
		{ID: "inference", Name: "Far Inference", Enabled: true, MonthlyBase: 0.08, GrowthRate: 1.05, Icon: "🧠"},
		{ID: "gpu", Name: "Far GPU De-Pin", Enabled: true, MonthlyBase: 0.06, GrowthRate: 1.15, Icon: "🖥️"},
		{ID: "gaming", Name: "Farcana Game", Enabled: false, MonthlyBase: 0.04, GrowthRate: 1.03, Icon: "🎮"},
		{ID: "desci", Name: "Far DeSci", Enabled: false, MonthlyBase: 0.02, GrowthRate: 1.02, Icon: "🧪"},
		{ID: "gamed", Name: "Far GameD", Enabled: false, MonthlyBase: 0.03, GrowthRate: 1.04, Icon: "🏆"},
		{ID: "fartwin", Name: "FarTwin AI", Enabled: false, MonthlyBase: 0.05, GrowthRate: 1.08, Icon: "👥"},
	}
}

// ToggleStream returns a copy of streams with the Enabled flag of the stream
// matching id flipped. The input slice is left untouched; an unknown id
// yields an unchanged copy.
func ToggleStream(streams []Stream, id string) []Stream {
	toggled := CopyStreams(streams)
	for i := range toggled {
		if toggled[i].ID == id {
			toggled[i].Enabled = !toggled[i].Enabled
		}
	}
	return toggled
}

// CopyStreams returns a shallow copy of streams; nil stays nil.
func CopyStreams(streams []Stream) []Stream {
	if streams == nil {
		return nil
	}
	return append([]Stream(nil), streams...)
}

// FindStream returns a pointer into streams for the given id, or nil.
func FindStream(streams []Stream, id string) *Stream {
	for i := range streams {
		if streams[i].ID == id {
			return &streams[i]
		}
	}
	return nil
}

// EnabledStreams returns the enabled subset, preserving order.
func EnabledStreams(streams []Stream) []Stream {
	var enabled []Stream
	for _, s := range streams {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}
