package ics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeParsing(t *testing.T) {
	cphLoc, locErr := time.LoadLocation("Europe/Copenhagen")
	if locErr != nil {
		t.Fatalf("could not load location")
	}

	cal := NewCalendar()

	// FORM 1, local time
	form1 := cal.AddEvent("be7c9690-d42a-40ef-b82f-1634dc5033b4")
	form1.SetProperty(ComponentPropertyDtStart, "19980118T230000")
	form1.SetProperty(ComponentPropertyDtEnd, "19980119T230000")

	// FORM 2, UTC time
	form2 := cal.AddEvent("53634aed-1b7d-4d85-aa38-ede76a2e4fe3")
	form2.SetProperty(ComponentPropertyDtStart, "20220122T170000Z")
	form2.SetProperty(ComponentPropertyDtEnd, "20220122T200000Z")

	// FORM 3, local time with time zone reference
	form3 := cal.AddEvent("269cf715-4e14-4a10-8753-f2feeb9d060e")
	form3.SetProperty(ComponentPropertyDtStart, "20211207T140000", WithTZID("Europe/Copenhagen"))
	form3.SetProperty(ComponentPropertyDtEnd, "20211207T150000", WithTZID("Europe/Copenhagen"))

	// Local date, with VALUE=DATE
	localDate := cal.AddEvent("fb54680e-7f69-46d3-9632-00aed2469f7b")
	localDate.SetProperty(ComponentPropertyDtStart, "20210627", WithValue(string(ValueDataTypeDate)))
	localDate.SetProperty(ComponentPropertyDtEnd, "20210628", WithValue(string(ValueDataTypeDate)))

	// UTC date
	utcDate := cal.AddEvent("62475ad0-a76c-4fab-8e68-f99209afcca6")
	utcDate.SetProperty(ComponentPropertyDtStart, "20210527Z")
	utcDate.SetProperty(ComponentPropertyDtEnd, "20210528Z")

	var tests = []struct {
		uid         string
		start       time.Time
		end         time.Time
		allDayStart time.Time
		allDayEnd   time.Time
	}{
		// FORM 1
		{"be7c9690-d42a-40ef-b82f-1634dc5033b4",
			time.Date(1998, 1, 18, 23, 0, 0, 0, time.Local),
			time.Date(1998, 1, 19, 23, 0, 0, 0, time.Local),
			time.Date(1998, 1, 18, 0, 0, 0, 0, time.Local),
			time.Date(1998, 1, 19, 0, 0, 0, 0, time.Local)},
		// FORM 2
		{"53634aed-1b7d-4d85-aa38-ede76a2e4fe3",
			time.Date(2022, 1, 22, 17, 0, 0, 0, time.UTC),
			time.Date(2022, 1, 22, 20, 0, 0, 0, time.UTC),
			time.Date(2022, 1, 22, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 1, 22, 0, 0, 0, 0, time.UTC)},
		// FORM 3
		{"269cf715-4e14-4a10-8753-f2feeb9d060e",
			time.Date(2021, 12, 7, 14, 0, 0, 0, cphLoc),
			time.Date(2021, 12, 7, 15, 0, 0, 0, cphLoc),
			time.Date(2021, 12, 7, 0, 0, 0, 0, cphLoc),
			time.Date(2021, 12, 7, 0, 0, 0, 0, cphLoc)},
		// Unknown local date, with 'VALUE'
		{"fb54680e-7f69-46d3-9632-00aed2469f7b",
			time.Date(2021, 6, 27, 0, 0, 0, 0, time.Local),
			time.Date(2021, 6, 28, 0, 0, 0, 0, time.Local),
			time.Date(2021, 6, 27, 0, 0, 0, 0, time.Local),
			time.Date(2021, 6, 28, 0, 0, 0, 0, time.Local)},
		// Unknown UTC date
		{"62475ad0-a76c-4fab-8e68-f99209afcca6",
			time.Date(2021, 5, 27, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 5, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 5, 27, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 5, 28, 0, 0, 0, 0, time.UTC)},
	}

	assertTime := func(evtUid string, exp time.Time, timeFunc func() (given time.Time, err error)) {
		given, err := timeFunc()
		if err == nil {
			if !exp.Equal(given) {
				t.Errorf("no match on '%s', expected=%v != given=%v", evtUid, exp, given)
			}
		} else {
			t.Errorf("get time on uid '%s', %v", evtUid, err)
		}
	}
	evts := cal.Events()

	for _, tt := range tests {
		t.Run(tt.uid, func(t *testing.T) {
			var evt *VEvent
			for _, e := range evts {
				if strings.EqualFold(e.Id(), tt.uid) {
					evt = e
				}
			}

			if evt == nil {
				t.Errorf("event UID not found, %s", tt.uid)
				return
			}

			assertTime(tt.uid, tt.start, evt.GetStartAt)
			assertTime(tt.uid, tt.end, evt.GetEndAt)
			assertTime(tt.uid, tt.allDayStart, evt.GetAllDayStartAt)
			assertTime(tt.uid, tt.allDayEnd, evt.GetAllDayEndAt)
		})
	}
}

func TestCalendarSerializeDefaults(t *testing.T) {
	c := NewCalendar()

	expected := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//calfmt//calfmt ics//EN\r\nEND:VCALENDAR\r\n"
	assert.Equal(t, expected, c.Serialize())
}

func TestNewCalendarFor(t *testing.T) {
	c := NewCalendarFor("Global Corp")
	assert.Contains(t, c.Serialize(), "PRODID:-//Global Corp//calfmt ics//EN\r\n")
}

func TestLineFolding(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:  "fold on the 75 octet boundary",
			input: "some really long line with spaces to fold on and the line should fold",
			output: `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//EN
DESCRIPTION:some really long line with spaces to fold on and the line shoul
 d fold
END:VCALENDAR
`,
		},
		{
			name:  "fold lines if no space",
			input: "somereallylonglinewithnospacestofoldonandthelineshouldfoldtothenextline",
			output: `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//EN
DESCRIPTION:somereallylonglinewithnospacestofoldonandthelineshouldfoldtothe
 nextline
END:VCALENDAR
`,
		},
		{
			name:  "fold inside a word when the boundary lands there",
			input: "some really long line with spaces howeverthelastpartofthelineisactuallytoolongtofitonsowehavetofoldpartwaythrough",
			output: `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//EN
DESCRIPTION:some really long line with spaces howeverthelastpartofthelineis
 actuallytoolongtofitonsowehavetofoldpartwaythrough
END:VCALENDAR
`,
		},
		{
			name:  "75 chars line should not fold",
			input: " this line is exactly 75 characters long with the property name",
			output: `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//EN
DESCRIPTION: this line is exactly 75 characters long with the property name
END:VCALENDAR
`,
		},
		{
			name: "runes should not be split",
			// the 75 bytes mark is in the middle of a rune
			input: "éé界世界世界世界世界世界世界世界世界世界世界世界世界",
			output: `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//EN
DESCRIPTION:éé界世界世界世界世界世界世界世界世界世界
 世界世界世界
END:VCALENDAR
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCalendar()
			c.SetDescription(tc.input)
			// we're not testing for encoding here so lets make the actual output line breaks == expected line breaks
			text := strings.Replace(c.Serialize(), "\r\n", "\n", -1)

			assert.Equal(t, tc.output, text)
			assert.True(t, utf8.ValidString(text), "Serialized .ics calendar isn't valid UTF-8 string")
		})
	}
}

func TestSerializeWithLineLength(t *testing.T) {
	c := NewCalendar()
	c.SetDescription(strings.Repeat("x", 40))

	text := strings.ReplaceAll(c.Serialize(WithLineLength(30)), "\r\n", "\n")

	expected := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calfmt//calfmt ics//
 EN
DESCRIPTION:xxxxxxxxxxxxxxxxxx
 xxxxxxxxxxxxxxxxxxxxxx
END:VCALENDAR
`
	assert.Equal(t, expected, text)

	for _, physical := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		assert.LessOrEqual(t, len(physical), 30)
	}
}

func TestSerializeWithNewLine(t *testing.T) {
	c := NewCalendar()

	text := c.Serialize(WithNewLineUnix)

	assert.Equal(t, "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//calfmt//calfmt ics//EN\nEND:VCALENDAR\n", text)
	assert.NotContains(t, text, "\r")
}

func TestSerializeWithConfiguration(t *testing.T) {
	c := NewCalendar()

	config := &SerializationConfiguration{MaxLength: FoldLimit, NewLine: "\n"}
	assert.Equal(t, c.Serialize(WithNewLineUnix), c.Serialize(config))
}

func TestSerializeUnknownOp(t *testing.T) {
	c := NewCalendar()

	var buf strings.Builder
	err := c.SerializeTo(&buf, 42)
	assert.ErrorIs(t, err, ErrUnknownSerializationOperation)
	assert.Empty(t, buf.String(), "nothing may be written when the options are rejected")

	assert.Empty(t, c.Serialize(42))
}

func TestSaveTo(t *testing.T) {
	c := NewCalendar()
	e := c.AddEvent("save-to@example.com")
	e.SetSummary("Saved to disk")

	path := filepath.Join(t.TempDir(), "calendar.ics")
	require.NoError(t, c.SaveTo(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.Serialize(), string(content))
}

func TestSaveToBadPath(t *testing.T) {
	c := NewCalendar()
	err := c.SaveTo(filepath.Join(t.TempDir(), "missing", "calendar.ics"))
	assert.Error(t, err)
}

func TestCalendarPropertySetters(t *testing.T) {
	testCases := []struct {
		name     string
		set      func(c *Calendar)
		expected []string
	}{
		{
			name:     "method",
			set:      func(c *Calendar) { c.SetMethod(MethodRequest) },
			expected: []string{"METHOD:REQUEST\r\n"},
		},
		{
			name:     "calscale",
			set:      func(c *Calendar) { c.SetCalscale("GREGORIAN") },
			expected: []string{"CALSCALE:GREGORIAN\r\n"},
		},
		{
			name: "name is mirrored for older clients",
			set:  func(c *Calendar) { c.SetName("Team Calendar") },
			expected: []string{
				"NAME:Team Calendar\r\n",
				"X-WR-CALNAME:Team Calendar\r\n",
			},
		},
		{
			name:     "refresh interval keeps its value type",
			set:      func(c *Calendar) { c.SetRefreshInterval("P1W") },
			expected: []string{"REFRESH-INTERVAL;VALUE=DURATION:P1W\r\n"},
		},
		{
			name:     "timezone id",
			set:      func(c *Calendar) { c.SetTimezoneId("Europe/Copenhagen") },
			expected: []string{"TIMEZONE-ID:Europe/Copenhagen\r\n"},
		},
		{
			name:     "x-wr-timezone",
			set:      func(c *Calendar) { c.SetXWRTimezone("Europe/Copenhagen") },
			expected: []string{"X-WR-TIMEZONE:Europe/Copenhagen\r\n"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCalendar()
			tc.set(c)
			serialized := c.Serialize()
			for _, want := range tc.expected {
				assert.Contains(t, serialized, want)
			}
		})
	}
}

func TestCalendarEvents(t *testing.T) {
	c := NewCalendar()
	c.AddEvent("first@example.com")
	c.AddEvent("second@example.com")
	require.Len(t, c.Events(), 2)

	c.RemoveEvent("first@example.com")
	require.Len(t, c.Events(), 1)
	assert.Equal(t, "second@example.com", c.Events()[0].Id())
}

func TestSetPropertyReplaces(t *testing.T) {
	c := NewCalendar()
	c.SetDescription("first")
	c.SetDescription("second")

	serialized := c.Serialize()
	assert.NotContains(t, serialized, "DESCRIPTION:first")
	assert.Equal(t, 1, strings.Count(serialized, "DESCRIPTION:"))
}

func TestAddSubcomponent(t *testing.T) {
	c := NewCalendar()
	avail := &GeneralComponent{Token: "VAVAILABILITY"}
	avail.SetProperty(ComponentPropertyUniqueId, "avail-1@example.com")
	c.AddSubcomponent(avail)

	serialized := c.Serialize()
	assert.Contains(t, serialized, "BEGIN:VAVAILABILITY\r\nUID:avail-1@example.com\r\nEND:VAVAILABILITY\r\n")
}
