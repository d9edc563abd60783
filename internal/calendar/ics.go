// Package calendar renders shows as an iCalendar feed for import into
// calendar apps.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/adires/htma-shows/internal/show"
)

// DefaultDuration is used for the event end time; the site doesn't publish
// show lengths.
const DefaultDuration = 2 * time.Hour

const location = "היכל התרבות"

// GenerateICS renders the shows as a single VCALENDAR with one VEVENT per
// show.
func GenerateICS(shows []show.Show) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HTMA Shows//htma-shows//EN")

	now := time.Now().UTC()
	for _, s := range shows {
		ev := cal.AddEvent(fmt.Sprintf("%s@htma.smarticket.co.il", s.Key()))
		ev.SetDtStampTime(now)

		start := time.Date(s.Date.Year, s.Date.Month, s.Date.Day, s.Time.Hour, s.Time.Minute, 0, 0, time.UTC)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(DefaultDuration))

		ev.SetSummary(s.Title)
		ev.SetDescription(fmt.Sprintf("%s show at HTMA on %s at %s", s.Category, s.Date, s.Time))
		ev.SetLocation(location)
	}

	return cal.Serialize()
}
