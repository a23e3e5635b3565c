// Package daycycle tracks the in-game clock and its day phases.
package daycycle

// PhaseID names a segment of the day.
type PhaseID string

const (
	Morning PhaseID = "Morning"
	Midday  PhaseID = "Midday"
	Day     PhaseID = "Day"
	Evening PhaseID = "Evening"
	Night   PhaseID = "Night"
)

// HoursPerDay is the length of a full cycle.
const HoursPerDay = 24

// Phase is one entry of the fixed phase table.
type Phase struct {
	ID      PhaseID
	Start   int // First hour, inclusive
	End     int // Last hour, inclusive; End < Start wraps past midnight
	Emoji   string
	Color   string
	CanRest bool
	Danger  bool
}

// Contains returns true if hour falls inside the phase.
func (p Phase) Contains(hour int) bool {
	if p.Start <= p.End {
		return hour >= p.Start && hour <= p.End
	}
	return hour >= p.Start || hour <= p.End
}

// Hours returns the number of hours the phase spans.
func (p Phase) Hours() int {
	if p.Start <= p.End {
		return p.End - p.Start + 1
	}
	return HoursPerDay - p.Start + p.End + 1
}

var phases = []Phase{
	{ID: Morning, Start: 6, End: 10, Emoji: "🌄", Color: "#f7d084"},
	{ID: Midday, Start: 11, End: 13, Emoji: "☀️", Color: "#ffeb3b"},
	{ID: Day, Start: 14, End: 17, Emoji: "🌤️", Color: "#87ceeb"},
	{ID: Evening, Start: 18, End: 23, Emoji: "🌥️", Color: "#ffa07a", CanRest: true},
	{ID: Night, Start: 0, End: 5, Emoji: "🌙", Color: "#1a3366", CanRest: true, Danger: true},
}

// Phases returns the phase table in order.
func Phases() []Phase {
	out := make([]Phase, len(phases))
	copy(out, phases)
	return out
}

// PhaseAt returns the phase containing hour, falling back to Night.
func PhaseAt(hour int) Phase {
	for _, p := range phases {
		if p.Contains(hour) {
			return p
		}
	}
	return phases[len(phases)-1]
}
