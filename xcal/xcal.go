// Package xcal renders calendars as xCal, the XML representation of
// iCalendar defined in RFC 6321. The XML form carries logical values only,
// so nothing here is ever line folded.
package xcal

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/calfmt/ics"
)

// Namespace is the XML namespace for iCalendar data, RFC 6321 section 2.
const Namespace = "urn:ietf:params:xml:ns:icalendar-2.0"

// NewDocument builds the xCal document for the calendar. Component and
// property names are lowercased and each value is wrapped in an element named
// after its type, per RFC 6321 sections 3.3 through 3.6.
func NewDocument(cal *ics.Calendar) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	icalendar := doc.CreateElement("icalendar")
	icalendar.CreateAttr("xmlns", Namespace)
	vcalendar := icalendar.CreateElement("vcalendar")
	if len(cal.CalendarProperties) > 0 {
		properties := vcalendar.CreateElement("properties")
		for _, p := range cal.CalendarProperties {
			appendProperty(properties, p.BaseProperty)
		}
	}
	if len(cal.Components) > 0 {
		components := vcalendar.CreateElement("components")
		for _, c := range cal.Components {
			appendComponent(components, c)
		}
	}
	return doc
}

// Marshal renders the calendar as an xCal document string.
func Marshal(cal *ics.Calendar) (string, error) {
	return NewDocument(cal).WriteToString()
}

// componentName maps a component to its lowercased xCal element name.
// Components of unknown concrete type have no defined name and are skipped.
func componentName(c ics.Component) string {
	switch c := c.(type) {
	case *ics.VEvent:
		return "vevent"
	case *ics.VTodo:
		return "vtodo"
	case *ics.VJournal:
		return "vjournal"
	case *ics.VBusy:
		return "vfreebusy"
	case *ics.VTimezone:
		return "vtimezone"
	case *ics.VAlarm:
		return "valarm"
	case *ics.Standard:
		return "standard"
	case *ics.Daylight:
		return "daylight"
	case *ics.GeneralComponent:
		return strings.ToLower(c.Token)
	default:
		return ""
	}
}

func appendComponent(parent *etree.Element, c ics.Component) {
	name := componentName(c)
	if name == "" {
		return
	}
	elem := parent.CreateElement(name)
	if props := c.UnknownPropertiesIANAProperties(); len(props) > 0 {
		properties := elem.CreateElement("properties")
		for _, p := range props {
			appendProperty(properties, p.BaseProperty)
		}
	}
	if subs := c.SubComponents(); len(subs) > 0 {
		components := elem.CreateElement("components")
		for _, sub := range subs {
			appendComponent(components, sub)
		}
	}
}

func appendProperty(parent *etree.Element, p ics.BaseProperty) {
	name, forcedType := splitPropertyToken(p.IANAToken)
	elem := parent.CreateElement(strings.ToLower(name))
	appendParameters(elem, p.ICalParameters)
	valueType := forcedType
	if valueType == "" {
		valueType = valueTypeFor(name, p.ICalParameters)
	}
	appendValue(elem, name, valueType, p.Value)
}

// splitPropertyToken separates a property name from a VALUE type baked into
// the token, as in "REFRESH-INTERVAL;VALUE=DURATION".
func splitPropertyToken(token string) (name, valueType string) {
	name, rest, found := strings.Cut(token, ";")
	if !found {
		return name, ""
	}
	if v, ok := strings.CutPrefix(rest, "VALUE="); ok {
		return name, strings.ToLower(v)
	}
	return name, ""
}

func appendParameters(elem *etree.Element, params map[string][]string) {
	keys := make([]string, 0, len(params))
	for k := range params {
		// The VALUE parameter is carried by the value element's name instead,
		// RFC 6321 section 3.6.
		if k == string(ics.ParameterValue) {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	parameters := elem.CreateElement("parameters")
	for _, k := range keys {
		param := parameters.CreateElement(strings.ToLower(k))
		for _, v := range params[k] {
			param.CreateElement(parameterValueType(k)).SetText(parameterValueText(k, v))
		}
	}
}

// parameterValueType returns the value element name for a parameter,
// RFC 6321 section 3.5.
func parameterValueType(name string) string {
	switch ics.Parameter(name) {
	case ics.ParameterAltrep, ics.ParameterDir, ics.ParameterMember,
		ics.ParameterDelegatedFrom, ics.ParameterDelegatedTo, ics.ParameterSentBy:
		return "uri"
	case ics.ParameterRsvp:
		return "boolean"
	}
	return "text"
}

func parameterValueText(name, v string) string {
	if ics.Parameter(name) == ics.ParameterRsvp {
		return strings.ToLower(v)
	}
	return v
}

// valueTypeFor resolves the value element name for a property, preferring an
// explicit VALUE parameter over the property's default type.
func valueTypeFor(name string, params map[string][]string) string {
	if vs, ok := params[string(ics.ParameterValue)]; ok && len(vs) == 1 {
		return strings.ToLower(vs[0])
	}
	switch ics.Property(name) {
	case ics.PropertyDtstart, ics.PropertyDtend, ics.PropertyDue, ics.PropertyDtstamp,
		ics.PropertyCompleted, ics.PropertyCreated, ics.PropertyLastModified,
		ics.PropertyRecurrenceId, ics.PropertyExdate, ics.PropertyRdate:
		return "date-time"
	case ics.PropertyDuration, ics.PropertyTrigger, ics.PropertyXPublishedTTL:
		return "duration"
	case ics.PropertyRrule, ics.PropertyExrule:
		return "recur"
	case ics.PropertyOrganizer, ics.PropertyAttendee:
		return "cal-address"
	case ics.PropertyUrl, ics.PropertyTzurl, ics.PropertyAttach:
		return "uri"
	case ics.PropertyPercentComplete, ics.PropertyPriority, ics.PropertyRepeat, ics.PropertySequence:
		return "integer"
	case ics.PropertyTzoffsetfrom, ics.PropertyTzoffsetto:
		return "utc-offset"
	case ics.PropertyFreebusy:
		return "period"
	case ics.PropertyGeo:
		return "geo"
	case ics.PropertyRequestStatus:
		return "request-status"
	}
	return "text"
}

func appendValue(elem *etree.Element, name, valueType, value string) {
	switch valueType {
	case "date-time":
		for _, v := range splitValues(value) {
			elem.CreateElement("date-time").SetText(xmlDateTime(v))
		}
	case "date":
		for _, v := range splitValues(value) {
			elem.CreateElement("date").SetText(xmlDate(v))
		}
	case "period":
		for _, v := range splitValues(value) {
			appendPeriod(elem, v)
		}
	case "recur":
		appendRecur(elem, value)
	case "geo":
		appendGeo(elem, value)
	case "request-status":
		appendRequestStatus(elem, value)
	case "utc-offset":
		elem.CreateElement("utc-offset").SetText(xmlUTCOffset(value))
	case "boolean":
		elem.CreateElement("boolean").SetText(strings.ToLower(value))
	case "text":
		for _, v := range textValues(name, value) {
			elem.CreateElement("text").SetText(ics.FromText(v))
		}
	default:
		elem.CreateElement(valueType).SetText(value)
	}
}

// textValues splits the multi-valued text properties on unescaped commas.
// All other text properties stay whole.
func textValues(name, value string) []string {
	switch ics.Property(name) {
	case ics.PropertyCategories, ics.PropertyResources:
		return splitValues(value)
	}
	return []string{value}
}

// splitValues splits a property value list on commas, leaving backslash
// escape sequences intact.
func splitValues(v string) []string {
	var out []string
	start := 0
	esc := false
	for i := 0; i < len(v); i++ {
		switch {
		case esc:
			esc = false
		case v[i] == '\\':
			esc = true
		case v[i] == ',':
			out = append(out, v[start:i])
			start = i + 1
		}
	}
	return append(out, v[start:])
}

// appendRecur writes a structured recur value, one lowercased element per
// rule part, RFC 6321 section 3.3.10.
func appendRecur(elem *etree.Element, value string) {
	recur := elem.CreateElement("recur")
	for _, part := range strings.Split(value, ";") {
		k, v, found := strings.Cut(part, "=")
		if !found || k == "" {
			continue
		}
		name := strings.ToLower(k)
		for _, item := range strings.Split(v, ",") {
			recur.CreateElement(name).SetText(item)
		}
	}
}

func appendPeriod(elem *etree.Element, value string) {
	period := elem.CreateElement("period")
	start, rest, found := strings.Cut(value, "/")
	period.CreateElement("start").SetText(xmlDateTime(start))
	if !found {
		return
	}
	if strings.HasPrefix(strings.TrimLeft(rest, "+-"), "P") {
		period.CreateElement("duration").SetText(rest)
	} else {
		period.CreateElement("end").SetText(xmlDateTime(rest))
	}
}

func appendGeo(elem *etree.Element, value string) {
	geo := elem.CreateElement("geo")
	lat, lon, _ := strings.Cut(value, ";")
	geo.CreateElement("latitude").SetText(lat)
	geo.CreateElement("longitude").SetText(lon)
}

func appendRequestStatus(elem *etree.Element, value string) {
	rstatus := elem.CreateElement("request-status")
	parts := splitSemicolons(value)
	if len(parts) > 0 {
		rstatus.CreateElement("code").SetText(parts[0])
	}
	if len(parts) > 1 {
		rstatus.CreateElement("description").SetText(ics.FromText(parts[1]))
	}
	if len(parts) > 2 {
		rstatus.CreateElement("data").SetText(ics.FromText(parts[2]))
	}
}

func splitSemicolons(v string) []string {
	var out []string
	start := 0
	esc := false
	for i := 0; i < len(v); i++ {
		switch {
		case esc:
			esc = false
		case v[i] == '\\':
			esc = true
		case v[i] == ';':
			out = append(out, v[start:i])
			start = i + 1
		}
	}
	return append(out, v[start:])
}

// xmlDateTime rewrites a compact iCalendar timestamp such as
// "20060102T150405Z" in the extended form "2006-01-02T15:04:05Z" used by
// xCal. Values it cannot interpret pass through unchanged.
func xmlDateTime(v string) string {
	if len(v) >= 15 && v[8] == 'T' && isDigits(v[:8]) && isDigits(v[9:15]) {
		out := v[0:4] + "-" + v[4:6] + "-" + v[6:8] + "T" + v[9:11] + ":" + v[11:13] + ":" + v[13:15]
		if strings.HasSuffix(v, "Z") {
			out += "Z"
		}
		return out
	}
	return xmlDate(v)
}

// xmlDate rewrites "20060102" as "2006-01-02". A trailing zone marker is
// dropped since the xCal date type carries none.
func xmlDate(v string) string {
	if len(v) >= 8 && isDigits(v[:8]) {
		return v[0:4] + "-" + v[4:6] + "-" + v[6:8]
	}
	return v
}

// xmlUTCOffset rewrites "+0200" or "-050030" with colons, as in "+02:00".
func xmlUTCOffset(v string) string {
	if len(v) < 5 || (v[0] != '+' && v[0] != '-') || !isDigits(v[1:5]) {
		return v
	}
	out := v[0:3] + ":" + v[3:5]
	if len(v) >= 7 && isDigits(v[5:7]) {
		out += ":" + v[5:7]
	}
	return out
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
