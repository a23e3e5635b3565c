package daycycle

// RestHour is the hour a rest always ends at.
const RestHour = 6

// Time is the in-game clock. Day starts at 1.
type Time struct {
	Hour int
	Day  int
}

// Start returns the default starting time: day 1, 06:00.
func Start() Time {
	return Time{Hour: RestHour, Day: 1}
}

// Normalize clamps an out-of-range clock back into hour [0,23], day >= 1.
func (t Time) Normalize() Time {
	if t.Day < 1 {
		t.Day = 1
	}
	if t.Hour < 0 {
		t.Hour = 0
	}
	t.Day += t.Hour / HoursPerDay
	t.Hour %= HoursPerDay
	return t
}

// Phase returns the phase of the current hour.
func (t Time) Phase() Phase {
	return PhaseAt(t.Hour)
}

// Change describes the effect of advancing the clock.
type Change struct {
	From, To     Time
	DaysElapsed  int
	PhaseChanged bool
}

// Advance moves the clock forward. Negative hours are ignored.
func (t *Time) Advance(hours int) Change {
	from := *t
	if hours > 0 {
		t.Hour += hours
		t.Day += t.Hour / HoursPerDay
		t.Hour %= HoursPerDay
	}
	return Change{
		From:         from,
		To:           *t,
		DaysElapsed:  t.Day - from.Day,
		PhaseChanged: PhaseAt(from.Hour).ID != PhaseAt(t.Hour).ID,
	}
}

// RestEligible returns true if the player may rest at hour during phase.
func RestEligible(hour int, phase Phase) bool {
	return hour == HoursPerDay-1 || phase.ID == Night
}

// HoursUntil returns the hours from hour until the next occurrence of target.
// Returns 0 when they are equal.
func HoursUntil(hour, target int) int {
	return ((target-hour)%HoursPerDay + HoursPerDay) % HoursPerDay
}
