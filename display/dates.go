package display

import "time"

const (
	shortLayout   = "Jan 2"
	timeLayout    = "3:04 PM"
	fullLayout    = "Monday, January 2, 2006"
	createdLayout = "1/2/2006"
)

// DateInfo holds the three renderings of an event start shown on a card.
type DateInfo struct {
	Short string `json:"date"`
	Time  string `json:"time"`
	Full  string `json:"full"`
}

// FormatDate renders t in loc. A nil loc means time.Local.
func FormatDate(t time.Time, loc *time.Location) DateInfo {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	return DateInfo{
		Short: lt.Format(shortLayout),
		Time:  lt.Format(timeLayout),
		Full:  lt.Format(fullLayout),
	}
}

// FormatCreated renders a project creation date as month/day/year.
func FormatCreated(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(createdLayout)
}
