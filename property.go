package ics

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type BaseProperty struct {
	IANAToken      string
	ICalParameters map[string][]string
	Value          string
}

// parameterValue returns the sole value of the given parameter. It errors
// when the parameter is absent or carries more than one value.
func (property *BaseProperty) parameterValue(param Parameter) (string, error) {
	v, ok := property.ICalParameters[string(param)]
	if !ok {
		return "", fmt.Errorf("parameter %q not found in property", param)
	}
	if len(v) != 1 {
		return "", fmt.Errorf("expected one value for parameter %q, got %d", param, len(v))
	}
	return v[0], nil
}

// isAllDay reports whether the property carries VALUE=DATE, i.e. a date with
// no time of day.
func (property *BaseProperty) isAllDay() bool {
	v, err := property.parameterValue(ParameterValue)
	return err == nil && v == string(ValueDataTypeDate)
}

type PropertyParameter interface {
	KeyValue(s ...interface{}) (string, []string)
}

type KeyValues struct {
	Key   string
	Value []string
}

func (kv *KeyValues) KeyValue(s ...interface{}) (string, []string) {
	return kv.Key, kv.Value
}

func WithCN(cn string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterCn),
		Value: []string{cn},
	}
}

func WithTZID(tzid string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterTzid),
		Value: []string{tzid},
	}
}

func WithAlternativeRepresentation(uri *url.URL) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterAltrep),
		Value: []string{uri.String()},
	}
}

func WithEncoding(encType string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterEncoding),
		Value: []string{encType},
	}
}

func WithFmtType(contentType string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterFmttype),
		Value: []string{contentType},
	}
}

func WithLanguage(language string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterLanguage),
		Value: []string{language},
	}
}

func WithValue(kind string) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterValue),
		Value: []string{kind},
	}
}

func WithRSVP(b bool) PropertyParameter {
	return &KeyValues{
		Key:   string(ParameterRsvp),
		Value: []string{strconv.FormatBool(b)},
	}
}

// serialize renders the property as one logical content line and writes it
// folded to w. Parameters are emitted in sorted key order so output is
// deterministic.
func (property *BaseProperty) serialize(w io.Writer, config *SerializationConfiguration) error {
	b := bytes.NewBufferString(property.IANAToken)
	keys := make([]string, 0, len(property.ICalParameters))
	for k := range property.ICalParameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(';')
		b.WriteString(k)
		b.WriteByte('=')
		for vi, v := range property.ICalParameters[k] {
			if vi > 0 {
				b.WriteByte(',')
			}
			if Parameter(k).IsQuoted() || strings.ContainsAny(v, ";:,\"") {
				// A parameter value may not contain a double quote,
				// RFC 5545 section 3.2.
				v = strings.ReplaceAll(v, `"`, "")
				b.WriteByte('"')
				b.WriteString(v)
				b.WriteByte('"')
				continue
			}
			b.WriteString(v)
		}
	}
	b.WriteByte(':')
	b.WriteString(property.Value)

	line := b.String()
	folded := &strings.Builder{}
	folded.Grow(FoldedSize(len(line)) + len(config.NewLine))
	_ = foldLine(folded, line, config.MaxLength, config.NewLine+" ")
	folded.WriteString(config.NewLine)
	_, err := io.WriteString(w, folded.String())
	return err
}

type IANAProperty struct {
	BaseProperty
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`;`, `\;`,
	`,`, `\,`,
)

func ToText(s string) string {
	// Some special characters for iCalendar format should be escaped while
	// setting a value of a property with a TEXT type.
	return textEscaper.Replace(s)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\;`, `;`,
	`\,`, `,`,
)

func FromText(s string) string {
	// Reverses the escaping applied to TEXT values by ToText.
	return textUnescaper.Replace(s)
}
