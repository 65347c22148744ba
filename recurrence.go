package ics

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// SetRecurrenceRule sets the RRULE property from a composed rule. Only the
// recurrence parts are written; DTSTART stays a separate property.
func (cb *ComponentBase) SetRecurrenceRule(rule *rrule.RRule, params ...PropertyParameter) {
	cb.SetProperty(ComponentPropertyRrule, rule.OrigOptions.RRuleString(), params...)
}

// GetRecurrenceRule parses the component's RRULE property. When the component
// carries a DTSTART the returned rule is anchored to it.
func (cb *ComponentBase) GetRecurrenceRule() (*rrule.RRule, error) {
	p := cb.GetProperty(ComponentPropertyRrule)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrorPropertyNotFound, ComponentPropertyRrule)
	}
	rule, err := rrule.StrToRRule(p.Value)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE %q: %w", p.Value, err)
	}
	if start, serr := cb.GetStartAt(); serr == nil {
		rule.DTStart(start)
	}
	return rule, nil
}

// RecurrenceSet assembles the component's DTSTART, RRULE, RDATE and EXDATE
// properties into a rule set for expanding concrete occurrences, e.g. with
// Between or After.
func (cb *ComponentBase) RecurrenceSet() (*rrule.Set, error) {
	ruleProp := cb.GetProperty(ComponentPropertyRrule)
	if ruleProp == nil {
		return nil, fmt.Errorf("%w: %s", ErrorPropertyNotFound, ComponentPropertyRrule)
	}
	lines := make([]string, 0, 4)
	if start, err := cb.GetStartAt(); err == nil {
		lines = append(lines, "DTSTART:"+start.UTC().Format(icalTimestampFormatUtc))
	}
	lines = append(lines, "RRULE:"+ruleProp.Value)
	for _, p := range cb.GetProperties(ComponentPropertyRdate) {
		lines = append(lines, "RDATE:"+p.Value)
	}
	for _, p := range cb.GetProperties(ComponentPropertyExdate) {
		lines = append(lines, "EXDATE:"+p.Value)
	}
	set, err := rrule.StrToRRuleSet(strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("assembling recurrence set: %w", err)
	}
	return set, nil
}
