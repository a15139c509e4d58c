package schedule

import "time"

type Status string

const (
	StatusBookable    Status = "BOOKABLE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusLeague      Status = "LEAGUE"
)

// SpecialRule is a recurring weekly window excluded from booking. Rules are
// static club configuration, not user data.
type SpecialRule struct {
	Status    Status
	Message   string
	Weekdays  []time.Weekday // 0=Sunday..6=Saturday
	StartHour int
	StartMin  int
	EndHour   int
	EndMin    int
}

func (r SpecialRule) appliesTo(wd time.Weekday) bool {
	for _, d := range r.Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}

type RuleSet []SpecialRule

// Classify resolves the status of a slot starting at startMinute on the
// given date. First matching rule wins; rules are assumed non-overlapping.
// Must be re-evaluated per date since the weekday changes.
func (rs RuleSet) Classify(date time.Time, startMinute int) (Status, string) {
	for _, r := range rs {
		if !r.appliesTo(date.Weekday()) {
			continue
		}
		from := r.StartHour*60 + r.StartMin
		to := r.EndHour*60 + r.EndMin
		if from <= startMinute && startMinute < to {
			return r.Status, r.Message
		}
	}
	return StatusBookable, ""
}

// DefaultRules is the club's standing weekly schedule.
func DefaultRules() RuleSet {
	return RuleSet{
		{
			Status:    StatusMaintenance,
			Message:   "Courts closed for maintenance until 08:00",
			Weekdays:  []time.Weekday{time.Monday},
			StartHour: 6, StartMin: 0, EndHour: 8, EndMin: 0,
		},
		{
			Status:    StatusLeague,
			Message:   "Reserved for club league play",
			Weekdays:  []time.Weekday{time.Wednesday, time.Friday},
			StartHour: 19, StartMin: 0, EndHour: 21, EndMin: 0,
		},
	}
}
