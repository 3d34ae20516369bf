package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one positional value in the line response.
type Field int

const (
	FieldStatus Field = iota
	FieldCountry
	FieldCity
	FieldLatitude
	FieldLongitude
	FieldTimezone
	FieldOffset
	FieldQuery
)

// wireName returns the name used in the fields= query parameter.
func (f Field) wireName() string {
	switch f {
	case FieldStatus:
		return "status"
	case FieldCountry:
		return "country"
	case FieldCity:
		return "city"
	case FieldLatitude:
		return "lat"
	case FieldLongitude:
		return "lon"
	case FieldTimezone:
		return "timezone"
	case FieldOffset:
		return "offset"
	case FieldQuery:
		return "query"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

func (f Field) String() string { return f.wireName() }

// StatusSuccess is the value of the status field on a successful lookup.
const StatusSuccess = "success"

// FieldSet is the ordered list of fields requested from the service. The same
// value drives the wire query string and the expected body line count, which
// keeps the two in lock-step: the parser can never expect more or fewer lines
// than the request asked for.
type FieldSet struct {
	fields []Field
}

// DefaultFields is the minimal seven-field set: country, city, lat, lon,
// timezone, offset, query.
func DefaultFields() FieldSet {
	return FieldSet{fields: []Field{
		FieldCountry, FieldCity, FieldLatitude, FieldLongitude,
		FieldTimezone, FieldOffset, FieldQuery,
	}}
}

// WithStatus returns the set extended with a leading status field, making the
// response eight lines long.
func (s FieldSet) WithStatus() FieldSet {
	out := FieldSet{fields: make([]Field, 0, len(s.fields)+1)}
	out.fields = append(out.fields, FieldStatus)
	out.fields = append(out.fields, s.fields...)
	return out
}

// Count is the number of body lines the response carries.
func (s FieldSet) Count() int { return len(s.fields) }

// At maps a 0-based body line index to its field.
func (s FieldSet) At(index int) (Field, bool) {
	if index < 0 || index >= len(s.fields) {
		return 0, false
	}
	return s.fields[index], true
}

// Query renders the comma-separated fields= parameter value.
func (s FieldSet) Query() string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.wireName()
	}
	return strings.Join(names, ",")
}

// ParseCoordinate decodes a latitude or longitude line. Malformed text decodes
// to 0, mirroring the service's own unset sentinel; a legitimate 0.0 and a
// garbled line are indistinguishable here.
func ParseCoordinate(line string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseOffset decodes a signed UTC offset in seconds. Unlike coordinates this
// is strict: 0 is a legal real offset, so garbage cannot be folded into it.
func ParseOffset(line string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid utc offset %q: %w", line, err)
	}
	return v, nil
}
