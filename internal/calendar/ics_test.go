package calendar

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/require"

	"github.com/adires/htma-shows/internal/show"
)

func TestGenerateICS(t *testing.T) {
	date, err := show.NewDate(2025, time.March, 1)
	require.NoError(t, err)

	shows := []show.Show{
		{Title: "Show A", Date: date, Time: show.TimeOfDay{Hour: 19}, Category: show.CategoryComedy},
		{Title: "Show B", Date: date, Time: show.TimeOfDay{Hour: 21, Minute: 30}, Category: show.CategoryMusic},
	}

	out := GenerateICS(shows)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	require.Equal(t, "Show A", first.GetProperty(ics.ComponentPropertySummary).Value)

	start, err := first.GetStartAt()
	require.NoError(t, err)
	require.Equal(t, 2025, start.Year())
	require.Equal(t, time.March, start.Month())
	require.Equal(t, 1, start.Day())
	require.Equal(t, 19, start.Hour())

	end, err := first.GetEndAt()
	require.NoError(t, err)
	require.Equal(t, DefaultDuration, end.Sub(start))
}

func TestGenerateICSEmpty(t *testing.T) {
	out := GenerateICS(nil)
	require.Contains(t, out, "BEGIN:VCALENDAR")
	require.NotContains(t, out, "BEGIN:VEVENT")
}
