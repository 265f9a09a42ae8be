package content

import "time"

// Status is the temporal state of an event relative to a reference day.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
)

// StatusInfo pairs a status with the color token the presentation layer maps
// to its badge styling.
type StatusInfo struct {
	Status Status `json:"status"`
	Color  string `json:"color"`
}

var statusColors = map[Status]string{
	StatusUpcoming: "primary",
	StatusOngoing:  "secondary",
	StatusPast:     "muted",
}

func statusInfo(s Status) StatusInfo {
	return StatusInfo{Status: s, Color: statusColors[s]}
}

// startDate resolves the event's start: the structured start date when it
// parses, else the publish date. ok is false when neither is usable.
func (e *Event) startDate() (time.Time, bool) {
	if e.ACF != nil {
		if t, ok := ParseFrenchDate(e.ACF.StartDate); ok {
			return t, true
		}
	}
	if t := PublishTime(e.Date); !t.IsZero() {
		// Publish timestamps carry no zone; rebuild the calendar day locally
		// so it compares against today the same way structured dates do.
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// EffectiveDate is the date an event sorts by: the structured end date, else
// the structured start date, else the publish date.
func (e *Event) EffectiveDate() time.Time {
	if e.ACF != nil {
		if t, ok := ParseFrenchDate(e.ACF.EndDate); ok {
			return t
		}
		if t, ok := ParseFrenchDate(e.ACF.StartDate); ok {
			return t
		}
	}
	return PublishTime(e.Date)
}

// StatusOf computes the event's status for the given wall-clock moment.
// Events without any usable date are reported upcoming.
func StatusOf(e *Event, now time.Time) StatusInfo {
	today := Midnight(now)

	start, ok := e.startDate()
	if !ok {
		return statusInfo(StatusUpcoming)
	}
	start = Midnight(start)

	if e.ACF != nil {
		if end, endOK := ParseFrenchDate(e.ACF.EndDate); endOK {
			last := endOfDay(end)
			switch {
			case today.Before(start):
				return statusInfo(StatusUpcoming)
			case !today.After(last):
				return statusInfo(StatusOngoing)
			default:
				return statusInfo(StatusPast)
			}
		}
	}

	switch {
	case today.Equal(start):
		return statusInfo(StatusOngoing)
	case today.Before(start):
		return statusInfo(StatusUpcoming)
	default:
		return statusInfo(StatusPast)
	}
}
