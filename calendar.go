package ics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"
)

// ComponentType enumerates the component names defined in RFC 5545 section 3.6.
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
	// ComponentVTodo represents a VTODO component.
	ComponentVTodo ComponentType = "VTODO"
	// ComponentVJournal represents a VJOURNAL component.
	ComponentVJournal ComponentType = "VJOURNAL"
	// ComponentVFreeBusy represents a VFREEBUSY component.
	ComponentVFreeBusy ComponentType = "VFREEBUSY"
	// ComponentVTimezone represents a VTIMEZONE component.
	ComponentVTimezone ComponentType = "VTIMEZONE"
	// ComponentVAlarm represents a VALARM subcomponent.
	ComponentVAlarm ComponentType = "VALARM"
	// ComponentStandard represents a STANDARD timezone subcomponent.
	ComponentStandard ComponentType = "STANDARD"
	// ComponentDaylight represents a DAYLIGHT timezone subcomponent.
	ComponentDaylight ComponentType = "DAYLIGHT"
)

// ComponentProperty enumerates the iCalendar property names used by
// components, as defined in RFC 5545 section 3.8. Use them with methods such
// as ComponentBase.SetProperty or ComponentBase.GetProperty rather than
// spelling property strings by hand.
type ComponentProperty Property

const (
	// ComponentPropertyUniqueId maps to UID, RFC 5545 section 3.8.4.7.
	ComponentPropertyUniqueId = ComponentProperty(PropertyUid) // TEXT
	// ComponentPropertyDtstamp maps to DTSTAMP, section 3.8.7.2.
	ComponentPropertyDtstamp = ComponentProperty(PropertyDtstamp)
	// ComponentPropertyOrganizer maps to ORGANIZER, section 3.8.4.3.
	ComponentPropertyOrganizer = ComponentProperty(PropertyOrganizer)
	// ComponentPropertyAttendee maps to ATTENDEE, section 3.8.4.1.
	ComponentPropertyAttendee = ComponentProperty(PropertyAttendee)
	// ComponentPropertyAttach maps to ATTACH, section 3.8.1.1.
	ComponentPropertyAttach = ComponentProperty(PropertyAttach)
	// ComponentPropertyDescription maps to DESCRIPTION, section 3.8.1.5.
	ComponentPropertyDescription = ComponentProperty(PropertyDescription) // TEXT
	// ComponentPropertyCategories maps to CATEGORIES, section 3.8.1.2.
	ComponentPropertyCategories = ComponentProperty(PropertyCategories) // TEXT
	// ComponentPropertyClass maps to CLASS, section 3.8.1.3.
	ComponentPropertyClass = ComponentProperty(PropertyClass) // TEXT
	// ComponentPropertyColor maps to COLOR, RFC 7986 section 5.9.
	ComponentPropertyColor = ComponentProperty(PropertyColor) // TEXT
	// ComponentPropertyCreated maps to CREATED, section 3.8.7.1.
	ComponentPropertyCreated = ComponentProperty(PropertyCreated)
	// ComponentPropertySummary maps to SUMMARY, section 3.8.1.12.
	ComponentPropertySummary = ComponentProperty(PropertySummary) // TEXT
	// ComponentPropertyDtStart maps to DTSTART, section 3.8.2.4.
	ComponentPropertyDtStart = ComponentProperty(PropertyDtstart)
	// ComponentPropertyDtEnd maps to DTEND, section 3.8.2.2.
	ComponentPropertyDtEnd = ComponentProperty(PropertyDtend)
	// ComponentPropertyLocation maps to LOCATION, section 3.8.1.7.
	ComponentPropertyLocation = ComponentProperty(PropertyLocation) // TEXT
	// ComponentPropertyStatus maps to STATUS, section 3.8.1.11.
	ComponentPropertyStatus = ComponentProperty(PropertyStatus) // TEXT
	// ComponentPropertyFreebusy maps to FREEBUSY, section 3.8.2.6.
	ComponentPropertyFreebusy = ComponentProperty(PropertyFreebusy)
	// ComponentPropertyLastModified maps to LAST-MODIFIED, section 3.8.7.3.
	ComponentPropertyLastModified = ComponentProperty(PropertyLastModified)
	// ComponentPropertyUrl maps to URL, section 3.8.4.6.
	ComponentPropertyUrl = ComponentProperty(PropertyUrl)
	// ComponentPropertyGeo maps to GEO, section 3.8.1.6.
	ComponentPropertyGeo = ComponentProperty(PropertyGeo)
	// ComponentPropertyTransp maps to TRANSP, section 3.8.2.7.
	ComponentPropertyTransp = ComponentProperty(PropertyTransp)
	// ComponentPropertySequence maps to SEQUENCE, section 3.8.7.4.
	ComponentPropertySequence = ComponentProperty(PropertySequence)
	// ComponentPropertyExdate maps to EXDATE, section 3.8.5.1.
	ComponentPropertyExdate = ComponentProperty(PropertyExdate)
	// ComponentPropertyExrule maps to the deprecated EXRULE property,
	// RFC 2445 section 4.8.5.2.
	ComponentPropertyExrule = ComponentProperty(PropertyExrule)
	// ComponentPropertyRdate maps to RDATE, section 3.8.5.2.
	ComponentPropertyRdate = ComponentProperty(PropertyRdate)
	// ComponentPropertyRrule maps to RRULE, section 3.8.5.3.
	ComponentPropertyRrule = ComponentProperty(PropertyRrule)
	// ComponentPropertyAction maps to ACTION, section 3.8.6.1.
	ComponentPropertyAction = ComponentProperty(PropertyAction)
	// ComponentPropertyTrigger maps to TRIGGER, section 3.8.6.3.
	ComponentPropertyTrigger = ComponentProperty(PropertyTrigger)
	// ComponentPropertyPriority maps to PRIORITY, section 3.8.1.9.
	ComponentPropertyPriority = ComponentProperty(PropertyPriority)
	// ComponentPropertyResources maps to RESOURCES, section 3.8.1.10.
	ComponentPropertyResources = ComponentProperty(PropertyResources)
	// ComponentPropertyCompleted maps to COMPLETED, section 3.8.2.1.
	ComponentPropertyCompleted = ComponentProperty(PropertyCompleted)
	// ComponentPropertyDue maps to DUE, section 3.8.2.3.
	ComponentPropertyDue = ComponentProperty(PropertyDue)
	// ComponentPropertyPercentComplete maps to PERCENT-COMPLETE, section 3.8.1.8.
	ComponentPropertyPercentComplete = ComponentProperty(PropertyPercentComplete)
	// ComponentPropertyTzid maps to TZID, section 3.8.3.1.
	ComponentPropertyTzid = ComponentProperty(PropertyTzid)
	// ComponentPropertyComment maps to COMMENT, section 3.8.1.4.
	ComponentPropertyComment = ComponentProperty(PropertyComment)
	// ComponentPropertyRelatedTo maps to RELATED-TO, section 3.8.4.5.
	ComponentPropertyRelatedTo = ComponentProperty(PropertyRelatedTo)
	// ComponentPropertyMethod maps to METHOD, section 3.7.2.
	ComponentPropertyMethod = ComponentProperty(PropertyMethod)
	// ComponentPropertyRecurrenceId maps to RECURRENCE-ID, section 3.8.4.4.
	ComponentPropertyRecurrenceId = ComponentProperty(PropertyRecurrenceId)
	// ComponentPropertyDuration maps to DURATION, section 3.8.2.5.
	ComponentPropertyDuration = ComponentProperty(PropertyDuration)
	// ComponentPropertyContact maps to CONTACT, section 3.8.4.2.
	ComponentPropertyContact = ComponentProperty(PropertyContact)
	// ComponentPropertyRequestStatus maps to REQUEST-STATUS, section 3.8.8.3.
	ComponentPropertyRequestStatus = ComponentProperty(PropertyRequestStatus)
	// ComponentPropertyRDate is kept for backward compatibility and is
	// equivalent to ComponentPropertyRdate.
	ComponentPropertyRDate = ComponentProperty(PropertyRdate)
)

// ComponentPropertyExtended returns the ComponentProperty for a vendor
// extension, adding the "X-" prefix when s does not carry it already.
func ComponentPropertyExtended(s string) ComponentProperty {
	return ComponentProperty("X-" + strings.TrimPrefix(s, "X-"))
}

type Property string

// Property enumerates iCalendar property names as defined primarily in RFC 5545
// section 3.8. Each constant maps to its textual representation.
const (
	// PropertyCalscale corresponds to CALSCALE, section 3.7.1.
	PropertyCalscale Property = "CALSCALE" // TEXT
	// PropertyMethod corresponds to METHOD, section 3.7.2.
	PropertyMethod Property = "METHOD" // TEXT
	// PropertyProductId corresponds to PRODID, section 3.7.3.
	PropertyProductId Property = "PRODID" // TEXT
	// PropertyVersion corresponds to VERSION, section 3.7.4.
	PropertyVersion Property = "VERSION" // TEXT
	// PropertyXPublishedTTL is a common extension used to signal how long
	// the calendar data may be cached.
	PropertyXPublishedTTL Property = "X-PUBLISHED-TTL"
	// PropertyRefreshInterval indicates how often clients should refresh
	// the calendar, RFC 7986 section 5.7.
	PropertyRefreshInterval Property = "REFRESH-INTERVAL;VALUE=DURATION"
	// PropertyAttach adds a binary or URI attachment, section 3.8.1.1.
	PropertyAttach Property = "ATTACH"
	// PropertyCategories corresponds to CATEGORIES, section 3.8.1.2.
	PropertyCategories Property = "CATEGORIES" // TEXT
	// PropertyClass corresponds to CLASS, section 3.8.1.3.
	PropertyClass Property = "CLASS" // TEXT
	// PropertyColor is the calendar color extension from RFC 7986.
	PropertyColor Property = "COLOR" // TEXT
	// PropertyComment corresponds to COMMENT, section 3.8.1.4.
	PropertyComment Property = "COMMENT" // TEXT
	// PropertyDescription corresponds to DESCRIPTION, section 3.8.1.5.
	PropertyDescription Property = "DESCRIPTION" // TEXT
	// PropertyXWRCalDesc is an Apple extension describing the calendar.
	PropertyXWRCalDesc Property = "X-WR-CALDESC"
	// PropertyGeo stores geographic position in "lat;lon" format, section 3.8.1.6.
	PropertyGeo Property = "GEO"
	// PropertyLocation corresponds to LOCATION, section 3.8.1.7.
	PropertyLocation Property = "LOCATION" // TEXT
	// PropertyPercentComplete indicates task completion percentage, section 3.8.1.8.
	PropertyPercentComplete Property = "PERCENT-COMPLETE"
	// PropertyPriority sets the task or event priority, section 3.8.1.9.
	PropertyPriority Property = "PRIORITY"
	// PropertyResources lists resources needed, section 3.8.1.10.
	PropertyResources Property = "RESOURCES" // TEXT
	// PropertyStatus sets the overall status, section 3.8.1.11.
	PropertyStatus Property = "STATUS" // TEXT
	// PropertySummary holds the title of the component, section 3.8.1.12.
	PropertySummary Property = "SUMMARY" // TEXT
	// PropertyCompleted records when a VTODO was completed, section 3.8.2.1.
	PropertyCompleted Property = "COMPLETED"
	// PropertyDtend gives the end time of a VEVENT, section 3.8.2.2.
	PropertyDtend Property = "DTEND"
	// PropertyDue sets the due date of a VTODO, section 3.8.2.3.
	PropertyDue Property = "DUE"
	// PropertyDtstart defines the start time of the component, section 3.8.2.4.
	PropertyDtstart Property = "DTSTART"
	// PropertyDuration specifies the duration of the event, section 3.8.2.5.
	PropertyDuration Property = "DURATION"
	// PropertyFreebusy conveys free/busy time information, section 3.8.2.6.
	PropertyFreebusy Property = "FREEBUSY"
	// PropertyTransp corresponds to TRANSP, section 3.8.2.7.
	PropertyTransp Property = "TRANSP" // TEXT
	// PropertyTzid identifies the timezone of a VTIMEZONE, section 3.8.3.1.
	PropertyTzid Property = "TZID" // TEXT
	// PropertyTzname gives the customary name for a timezone, section 3.8.3.2.
	PropertyTzname Property = "TZNAME" // TEXT
	// PropertyTzoffsetfrom specifies the offset before a transition, section 3.8.3.3.
	PropertyTzoffsetfrom Property = "TZOFFSETFROM"
	// PropertyTzoffsetto specifies the offset after a transition, section 3.8.3.4.
	PropertyTzoffsetto Property = "TZOFFSETTO"
	// PropertyTzurl points to timezone information, section 3.8.3.5.
	PropertyTzurl Property = "TZURL"
	// PropertyAttendee lists a participant, section 3.8.4.1.
	PropertyAttendee Property = "ATTENDEE"
	// PropertyContact supplies contact information, section 3.8.4.2.
	PropertyContact Property = "CONTACT" // TEXT
	// PropertyOrganizer gives the organizer's address, section 3.8.4.3.
	PropertyOrganizer Property = "ORGANIZER"
	// PropertyRecurrenceId identifies a specific recurrence, section 3.8.4.4.
	PropertyRecurrenceId Property = "RECURRENCE-ID"
	// PropertyRelatedTo corresponds to RELATED-TO, section 3.8.4.5.
	PropertyRelatedTo Property = "RELATED-TO" // TEXT
	// PropertyUrl provides a link to additional information, section 3.8.4.6.
	PropertyUrl Property = "URL"
	// PropertyUid holds the globally unique identifier, section 3.8.4.7.
	PropertyUid Property = "UID" // TEXT
	// PropertyExdate excludes a recurrence date, section 3.8.5.1.
	PropertyExdate Property = "EXDATE"
	// PropertyExrule is the deprecated exception rule property, RFC 2445
	// section 4.8.5.2.
	PropertyExrule Property = "EXRULE"
	// PropertyRdate specifies additional recurrence dates, section 3.8.5.2.
	PropertyRdate Property = "RDATE"
	// PropertyRrule defines a recurrence rule, section 3.8.5.3.
	PropertyRrule Property = "RRULE"
	// PropertyAction corresponds to ACTION, section 3.8.6.1.
	PropertyAction Property = "ACTION" // TEXT
	// PropertyRepeat indicates how often to repeat an alarm, section 3.8.6.2.
	PropertyRepeat Property = "REPEAT"
	// PropertyTrigger defines when an alarm triggers, section 3.8.6.3.
	PropertyTrigger Property = "TRIGGER"
	// PropertyCreated records the creation time, section 3.8.7.1.
	PropertyCreated Property = "CREATED"
	// PropertyDtstamp is the creation timestamp, section 3.8.7.2.
	PropertyDtstamp Property = "DTSTAMP"
	// PropertyLastModified records the last modification time, section 3.8.7.3.
	PropertyLastModified Property = "LAST-MODIFIED"
	// PropertyRequestStatus conveys the status of a scheduling request, section 3.8.8.3.
	PropertyRequestStatus Property = "REQUEST-STATUS" // TEXT
	// PropertyName is the calendar name extension from RFC 7986.
	PropertyName Property = "NAME"
	// PropertyXWRCalName stores the display name for Apple clients.
	PropertyXWRCalName Property = "X-WR-CALNAME"
	// PropertyXWRTimezone defines the default timezone for the calendar.
	PropertyXWRTimezone Property = "X-WR-TIMEZONE"
	// PropertySequence increments on each update to an item, section 3.8.7.4.
	PropertySequence Property = "SEQUENCE"
	// PropertyXWRCalID is an Apple extension storing a stable calendar ID.
	PropertyXWRCalID Property = "X-WR-RELCALID"
	// PropertyTimezoneId is defined in RFC 9074 for naming embedded
	// VTIMEZONE components.
	PropertyTimezoneId Property = "TIMEZONE-ID"
)

type Parameter string

// IsQuoted reports whether the parameter's value should be quoted when serialized.
// RFC 5545 section 3.2 specifies ALTREP as the only standard parameter requiring quotes.
func (p Parameter) IsQuoted() bool {
	switch p {
	case ParameterAltrep:
		return true
	}
	return false
}

const (
	// ParameterAltrep references an alternate text representation (section 3.2.1).
	ParameterAltrep Parameter = "ALTREP"
	// ParameterCn provides a common name (section 3.2.2).
	ParameterCn Parameter = "CN"
	// ParameterCutype defines the calendar user type (section 3.2.3).
	ParameterCutype Parameter = "CUTYPE"
	// ParameterDelegatedFrom lists participants the request was delegated from (section 3.2.4).
	ParameterDelegatedFrom Parameter = "DELEGATED-FROM"
	// ParameterDelegatedTo lists participants the request was delegated to (section 3.2.5).
	ParameterDelegatedTo Parameter = "DELEGATED-TO"
	// ParameterDir gives a reference to directory information (section 3.2.6).
	ParameterDir Parameter = "DIR"
	// ParameterEncoding defines inline attachment encoding (section 3.2.7).
	ParameterEncoding Parameter = "ENCODING"
	// ParameterFmttype is the content type for a binary attachment (section 3.2.8).
	ParameterFmttype Parameter = "FMTTYPE"
	// ParameterFbtype specifies free/busy time type (section 3.2.9).
	ParameterFbtype Parameter = "FBTYPE"
	// ParameterLanguage indicates the language for text values (section 3.2.10).
	ParameterLanguage Parameter = "LANGUAGE"
	// ParameterMember identifies group membership (section 3.2.11).
	ParameterMember Parameter = "MEMBER"
	// ParameterParticipationStatus holds participation status (section 3.2.12).
	ParameterParticipationStatus Parameter = "PARTSTAT"
	// ParameterRange is used with RECURRENCE-ID (section 3.2.13).
	ParameterRange Parameter = "RANGE"
	// ParameterRelated indicates the relationship type for FREEBUSY (section 3.2.14).
	ParameterRelated Parameter = "RELATED"
	// ParameterReltype specifies relationship type for RELATED-TO (section 3.2.15).
	ParameterReltype Parameter = "RELTYPE"
	// ParameterRole indicates participant role (section 3.2.16).
	ParameterRole Parameter = "ROLE"
	// ParameterRsvp indicates whether a response is requested (section 3.2.17).
	ParameterRsvp Parameter = "RSVP"
	// ParameterSentBy gives the address responsible for sending a request (section 3.2.18).
	ParameterSentBy Parameter = "SENT-BY"
	// ParameterTzid references a time zone identifier (section 3.2.19).
	ParameterTzid Parameter = "TZID"
	// ParameterValue sets the value data type of the property (section 3.2.20).
	ParameterValue Parameter = "VALUE"
)

type ValueDataType string

// ValueDataType lists the VALUE parameter types described in RFC 5545 section 3.3.
const (
	// ValueDataTypeBinary represents binary data (section 3.3.1).
	ValueDataTypeBinary ValueDataType = "BINARY"
	// ValueDataTypeBoolean represents boolean values (section 3.3.2).
	ValueDataTypeBoolean ValueDataType = "BOOLEAN"
	// ValueDataTypeCalAddress represents a calendar address (section 3.3.3).
	ValueDataTypeCalAddress ValueDataType = "CAL-ADDRESS"
	// ValueDataTypeDate represents a DATE value (section 3.3.4).
	ValueDataTypeDate ValueDataType = "DATE"
	// ValueDataTypeDateTime represents a DATE-TIME (section 3.3.5).
	ValueDataTypeDateTime ValueDataType = "DATE-TIME"
	// ValueDataTypeDuration represents a DURATION (section 3.3.6).
	ValueDataTypeDuration ValueDataType = "DURATION"
	// ValueDataTypeFloat represents floating point values (section 3.3.7).
	ValueDataTypeFloat ValueDataType = "FLOAT"
	// ValueDataTypeInteger represents integer values (section 3.3.8).
	ValueDataTypeInteger ValueDataType = "INTEGER"
	// ValueDataTypePeriod represents a PERIOD value (section 3.3.9).
	ValueDataTypePeriod ValueDataType = "PERIOD"
	// ValueDataTypeRecur represents a RECUR value (section 3.3.10).
	ValueDataTypeRecur ValueDataType = "RECUR"
	// ValueDataTypeText represents a TEXT value (section 3.3.11).
	ValueDataTypeText ValueDataType = "TEXT"
	// ValueDataTypeTime represents a TIME value (section 3.3.12).
	ValueDataTypeTime ValueDataType = "TIME"
	// ValueDataTypeUri represents a URI (section 3.3.13).
	ValueDataTypeUri ValueDataType = "URI"
	// ValueDataTypeUtcOffset represents UTC-OFFSET (section 3.3.14).
	ValueDataTypeUtcOffset ValueDataType = "UTC-OFFSET"
)

type CalendarUserType string

// CalendarUserType enumerates the CUTYPE parameter values from RFC 5545 section 3.2.3.
const (
	// CalendarUserTypeIndividual identifies an individual calendar user.
	CalendarUserTypeIndividual CalendarUserType = "INDIVIDUAL"
	// CalendarUserTypeGroup identifies a group of users.
	CalendarUserTypeGroup CalendarUserType = "GROUP"
	// CalendarUserTypeResource identifies a physical resource.
	CalendarUserTypeResource CalendarUserType = "RESOURCE"
	// CalendarUserTypeRoom identifies a room resource.
	CalendarUserTypeRoom CalendarUserType = "ROOM"
	// CalendarUserTypeUnknown is used when the user type is unknown.
	CalendarUserTypeUnknown CalendarUserType = "UNKNOWN"
)

func (cut CalendarUserType) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterCutype), []string{string(cut)}
}

type FreeBusyTimeType string

// FreeBusyTimeType enumerates the FBTYPE parameter values used with FREEBUSY
// properties (RFC 5545 section 3.2.9).
const (
	// FreeBusyTimeTypeFree indicates the time is free.
	FreeBusyTimeTypeFree FreeBusyTimeType = "FREE"
	// FreeBusyTimeTypeBusy indicates the time is busy.
	FreeBusyTimeTypeBusy FreeBusyTimeType = "BUSY"
	// FreeBusyTimeTypeBusyUnavailable indicates the time is busy and unavailable.
	FreeBusyTimeTypeBusyUnavailable FreeBusyTimeType = "BUSY-UNAVAILABLE"
	// FreeBusyTimeTypeBusyTentative indicates tentative busy time.
	FreeBusyTimeTypeBusyTentative FreeBusyTimeType = "BUSY-TENTATIVE"
)

type ParticipationStatus string

// ParticipationStatus enumerates the PARTSTAT parameter values from RFC 5545 section 3.2.12.
const (
	// ParticipationStatusNeedsAction indicates a pending reply.
	ParticipationStatusNeedsAction ParticipationStatus = "NEEDS-ACTION"
	// ParticipationStatusAccepted indicates acceptance.
	ParticipationStatusAccepted ParticipationStatus = "ACCEPTED"
	// ParticipationStatusDeclined indicates the invitation was declined.
	ParticipationStatusDeclined ParticipationStatus = "DECLINED"
	// ParticipationStatusTentative indicates a tentative reply.
	ParticipationStatusTentative ParticipationStatus = "TENTATIVE"
	// ParticipationStatusDelegated indicates delegation to another party.
	ParticipationStatusDelegated ParticipationStatus = "DELEGATED"
	// ParticipationStatusCompleted indicates the task has been completed.
	ParticipationStatusCompleted ParticipationStatus = "COMPLETED"
	// ParticipationStatusInProcess indicates work is in progress.
	ParticipationStatusInProcess ParticipationStatus = "IN-PROCESS"
)

func (ps ParticipationStatus) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterParticipationStatus), []string{string(ps)}
}

type ObjectStatus string

// ObjectStatus enumerates allowed STATUS property values for calendar objects
// (RFC 5545 section 3.8.1.11).
const (
	// ObjectStatusTentative indicates the object is tentative.
	ObjectStatusTentative ObjectStatus = "TENTATIVE"
	// ObjectStatusConfirmed indicates the object is confirmed.
	ObjectStatusConfirmed ObjectStatus = "CONFIRMED"
	// ObjectStatusCancelled indicates the object is cancelled.
	ObjectStatusCancelled ObjectStatus = "CANCELLED"
	// ObjectStatusNeedsAction indicates further action is required.
	ObjectStatusNeedsAction ObjectStatus = "NEEDS-ACTION"
	// ObjectStatusCompleted indicates completion.
	ObjectStatusCompleted ObjectStatus = "COMPLETED"
	// ObjectStatusInProcess indicates processing is ongoing.
	ObjectStatusInProcess ObjectStatus = "IN-PROCESS"
	// ObjectStatusDraft indicates a draft state.
	ObjectStatusDraft ObjectStatus = "DRAFT"
	// ObjectStatusFinal indicates a final state.
	ObjectStatusFinal ObjectStatus = "FINAL"
)

func (ps ObjectStatus) KeyValue(_ ...interface{}) (string, []string) {
	return string(PropertyStatus), []string{string(ps)}
}

type RelationshipType string

// RelationshipType enumerates RELTYPE parameter values for RELATED-TO
// properties (RFC 5545 section 3.2.15).
const (
	// RelationshipTypeChild indicates a child relationship.
	RelationshipTypeChild RelationshipType = "CHILD"
	// RelationshipTypeParent indicates a parent relationship.
	RelationshipTypeParent RelationshipType = "PARENT"
	// RelationshipTypeSibling indicates a sibling relationship.
	RelationshipTypeSibling RelationshipType = "SIBLING"
)

type ParticipationRole string

// ParticipationRole enumerates the ROLE parameter values for participants
// (RFC 5545 section 3.2.16).
const (
	// ParticipationRoleChair designates the chair of the meeting.
	ParticipationRoleChair ParticipationRole = "CHAIR"
	// ParticipationRoleReqParticipant indicates a required participant.
	ParticipationRoleReqParticipant ParticipationRole = "REQ-PARTICIPANT"
	// ParticipationRoleOptParticipant indicates an optional participant.
	ParticipationRoleOptParticipant ParticipationRole = "OPT-PARTICIPANT"
	// ParticipationRoleNonParticipant indicates a non-participant observer.
	ParticipationRoleNonParticipant ParticipationRole = "NON-PARTICIPANT"
)

func (pr ParticipationRole) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterRole), []string{string(pr)}
}

type Action string

// Action enumerates VALARM ACTION property values (RFC 5545 section 3.8.6.1).
const (
	// ActionAudio plays an audio alert.
	ActionAudio Action = "AUDIO"
	// ActionDisplay shows display text.
	ActionDisplay Action = "DISPLAY"
	// ActionEmail sends an email message.
	ActionEmail Action = "EMAIL"
	// ActionProcedure invokes a procedure.
	ActionProcedure Action = "PROCEDURE"
)

type Classification string

// Classification enumerates CLASS property values (RFC 5545 section 3.8.1.3).
const (
	// ClassificationPublic marks information as public.
	ClassificationPublic Classification = "PUBLIC"
	// ClassificationPrivate marks information as private.
	ClassificationPrivate Classification = "PRIVATE"
	// ClassificationConfidential marks information as confidential.
	ClassificationConfidential Classification = "CONFIDENTIAL"
)

type Method string

// Method enumerates METHOD property values used with scheduling messages
// (RFC 5545 section 3.7.2).
const (
	// MethodPublish publishes a calendar.
	MethodPublish Method = "PUBLISH"
	// MethodRequest requests scheduling.
	MethodRequest Method = "REQUEST"
	// MethodReply sends a scheduling reply.
	MethodReply Method = "REPLY"
	// MethodAdd adds additional information.
	MethodAdd Method = "ADD"
	// MethodCancel cancels a previously scheduled object.
	MethodCancel Method = "CANCEL"
	// MethodRefresh requests a resend of a calendar.
	MethodRefresh Method = "REFRESH"
	// MethodCounter sends a counter proposal.
	MethodCounter Method = "COUNTER"
	// MethodDeclinecounter declines a counter proposal.
	MethodDeclinecounter Method = "DECLINECOUNTER"
)

type CalendarProperty struct {
	BaseProperty
}

// Calendar represents a VCALENDAR object. RFC 5545 section 3.6 says:
// "A 'VCALENDAR' object MUST include the 'PRODID' and 'VERSION' properties".
// NewCalendar and NewCalendarFor create a calendar populated with those
// required fields.
type Calendar struct {
	Components         []Component
	CalendarProperties []CalendarProperty
}

// NewCalendar returns a basic Calendar using a default product identifier.
// The returned calendar satisfies the minimum requirements of RFC 5545 by
// including the VERSION and PRODID properties.
func NewCalendar() *Calendar {
	return NewCalendarFor("calfmt")
}

// NewCalendarFor constructs a Calendar for the given service. The VERSION
// property is set to "2.0" as defined in RFC 5545 section 3.7.4 and PRODID is
// populated using the provided service identifier per section 3.7.3.
func NewCalendarFor(service string) *Calendar {
	c := &Calendar{
		Components:         []Component{},
		CalendarProperties: []CalendarProperty{},
	}
	c.SetVersion("2.0")
	c.SetProductId("-//" + service + "//calfmt ics//EN")
	return c
}

func (cal *Calendar) Serialize(ops ...any) string {
	b := &strings.Builder{}
	// We are intentionally ignoring the return value. _ used to communicate this to lint.
	_ = cal.SerializeTo(b, ops...)
	return b.String()
}

type WithLineLength int
type WithNewLine string

func (cal *Calendar) SerializeTo(w io.Writer, ops ...any) error {
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "BEGIN:VCALENDAR"+serializeConfig.NewLine); err != nil {
		return err
	}
	for _, p := range cal.CalendarProperties {
		err := p.serialize(w, serializeConfig)
		if err != nil {
			return err
		}
	}
	for _, c := range cal.Components {
		err := c.SerializeTo(w, serializeConfig)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "END:VCALENDAR"+serializeConfig.NewLine)
	return err
}

// SaveTo writes the serialized calendar to a file, creating or truncating it.
// It accepts the same optional arguments as Serialize.
func (cal *Calendar) SaveTo(path string, ops ...any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func(closer io.Closer) {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}(f)
	b := bufio.NewWriter(f)
	if err := cal.SerializeTo(b, ops...); err != nil {
		return err
	}
	return b.Flush()
}

// SerializationConfiguration controls how calendars and components are written
// out. MaxLength is the 75 octet line length limit from RFC 5545 section 3.1.
// NewLine selects the line termination sequence.
type SerializationConfiguration struct {
	MaxLength int
	NewLine   string
}

// parseSerializeOps interprets the optional arguments provided to Serialize or
// SerializeTo. It accepts WithLineLength, WithNewLine or a
// *SerializationConfiguration. Unsupported types return an error.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			return op, nil
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("%w: op %d of type %s", ErrUnknownSerializationOperation, opi, reflect.TypeOf(op))
		}
	}
	return serializeConfig, nil
}

// defaultSerializationOptions returns the default values used for calendar
// serialization, a 75 octet line limit and CRLF line endings.
func defaultSerializationOptions() *SerializationConfiguration {
	serializeConfig := &SerializationConfiguration{
		MaxLength: FoldLimit,
		NewLine:   string(NewLine),
	}
	return serializeConfig
}

func (cal *Calendar) SetMethod(method Method, params ...PropertyParameter) {
	cal.setProperty(PropertyMethod, string(method), params...)
}

func (cal *Calendar) SetXPublishedTTL(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyXPublishedTTL, s, params...)
}

func (cal *Calendar) SetVersion(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyVersion, s, params...)
}

func (cal *Calendar) SetProductId(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyProductId, s, params...)
}

func (cal *Calendar) SetName(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyName, s, params...)
	cal.setProperty(PropertyXWRCalName, s, params...)
}

func (cal *Calendar) SetColor(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyColor, s, params...)
}

func (cal *Calendar) SetXWRCalName(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyXWRCalName, s, params...)
}

func (cal *Calendar) SetXWRCalDesc(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyXWRCalDesc, s, params...)
}

func (cal *Calendar) SetXWRTimezone(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyXWRTimezone, s, params...)
}

func (cal *Calendar) SetXWRCalID(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyXWRCalID, s, params...)
}

func (cal *Calendar) SetDescription(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyDescription, s, params...)
}

func (cal *Calendar) SetLastModified(t time.Time, params ...PropertyParameter) {
	cal.setProperty(PropertyLastModified, t.UTC().Format(icalTimestampFormatUtc), params...)
}

func (cal *Calendar) SetRefreshInterval(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyRefreshInterval, s, params...)
}

func (cal *Calendar) SetCalscale(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyCalscale, s, params...)
}

func (cal *Calendar) SetUrl(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyUrl, s, params...)
}

func (cal *Calendar) SetTzid(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyTzid, s, params...)
}

func (cal *Calendar) SetTimezoneId(s string, params ...PropertyParameter) {
	cal.setProperty(PropertyTimezoneId, s, params...)
}

func (cal *Calendar) setProperty(property Property, value string, params ...PropertyParameter) {
	for i := range cal.CalendarProperties {
		if cal.CalendarProperties[i].IANAToken == string(property) {
			cal.CalendarProperties[i].Value = value
			cal.CalendarProperties[i].ICalParameters = map[string][]string{}
			for _, p := range params {
				k, v := p.KeyValue()
				cal.CalendarProperties[i].ICalParameters[k] = v
			}
			return
		}
	}
	r := CalendarProperty{
		BaseProperty{
			IANAToken:      string(property),
			Value:          value,
			ICalParameters: map[string][]string{},
		},
	}
	for _, p := range params {
		k, v := p.KeyValue()
		r.ICalParameters[k] = v
	}
	cal.CalendarProperties = append(cal.CalendarProperties, r)
}

func (cal *Calendar) AddEvent(id string) *VEvent {
	e := NewEvent(id)
	cal.Components = append(cal.Components, e)
	return e
}

func (cal *Calendar) AddVEvent(e *VEvent) {
	cal.Components = append(cal.Components, e)
}

// AddSubcomponent appends any component, including a GeneralComponent
// carrying a non-standard BEGIN token.
func (cal *Calendar) AddSubcomponent(c Component) {
	cal.Components = append(cal.Components, c)
}

func (cal *Calendar) Events() (r []*VEvent) {
	r = []*VEvent{}
	for i := range cal.Components {
		switch event := cal.Components[i].(type) {
		case *VEvent:
			r = append(r, event)
		}
	}
	return
}

func (cal *Calendar) RemoveEvent(id string) {
	for i := range cal.Components {
		switch event := cal.Components[i].(type) {
		case *VEvent:
			if event.Id() == id {
				if len(cal.Components) > i+1 {
					cal.Components = append(cal.Components[:i], cal.Components[i+1:]...)
				} else {
					cal.Components = cal.Components[:i]
				}
				return
			}
		}
	}
}
