package routes

import (
	"errors"
	"fmt"
	"strings"
)

// Field indexes of a route line.
const (
	FieldAirline = iota
	FieldAirlineID
	FieldSourceAirport
	FieldSourceAirportID
	FieldDestinationAirport
	FieldDestinationAirportID
	FieldCodeshare
	FieldStops
	FieldEquipment

	// NumFields is the number of positional fields in a complete line.
	NumFields
)

// MinFields is the smallest field count that can carry both endpoints.
const MinFields = FieldDestinationAirport + 1

const fieldSeparator = ","

// Sentinel errors returned by ParseLineStrict.
var (
	// ErrTooFewFields indicates a line with fewer than MinFields fields.
	ErrTooFewFields = errors.New("routes: too few fields")

	// ErrEmptyEndpoint indicates an empty source or destination airport.
	ErrEmptyEndpoint = errors.New("routes: empty airport code")
)

// Record is the typed view of one route line.
type Record struct {
	Airline              string
	AirlineID            string
	SourceAirport        string
	SourceAirportID      string
	DestinationAirport   string
	DestinationAirportID string
	Codeshare            string
	Stops                string
	Equipment            string

	// Fields is the number of comma-delimited fields found on the line.
	Fields int
}

// Edge returns the (source, destination) pair carried by the record.
func (r Record) Edge() (source, destination string) {
	return r.SourceAirport, r.DestinationAirport
}

// Valid reports whether both endpoints are non-empty.
func (r Record) Valid() bool {
	return r.SourceAirport != "" && r.DestinationAirport != ""
}

// ParseLine splits line into a Record. ok is false when the source or the
// destination field is empty; such lines are meant to be skipped silently.
func ParseLine(line string) (rec Record, ok bool) {
	rec = split(line)

	return rec, rec.Valid()
}

// ParseLineStrict is ParseLine with diagnostics: it rejects lines with fewer
// than MinFields fields and lines with an empty endpoint.
func ParseLineStrict(line string) (Record, error) {
	rec := split(line)
	if rec.Fields < MinFields {
		return rec, fmt.Errorf("%w: got %d, need %d", ErrTooFewFields, rec.Fields, MinFields)
	}
	if rec.SourceAirport == "" {
		return rec, fmt.Errorf("%w: source (field %d)", ErrEmptyEndpoint, FieldSourceAirport)
	}
	if rec.DestinationAirport == "" {
		return rec, fmt.Errorf("%w: destination (field %d)", ErrEmptyEndpoint, FieldDestinationAirport)
	}

	return rec, nil
}

// split reads up to NumFields fields positionally. Text beyond the ninth
// field stays attached to Equipment.
func split(line string) Record {
	parts := strings.SplitN(line, fieldSeparator, NumFields)
	var f [NumFields]string
	copy(f[:], parts)

	fields := len(parts)
	if line == "" {
		fields = 0
	}

	return Record{
		Airline:              f[FieldAirline],
		AirlineID:            f[FieldAirlineID],
		SourceAirport:        f[FieldSourceAirport],
		SourceAirportID:      f[FieldSourceAirportID],
		DestinationAirport:   f[FieldDestinationAirport],
		DestinationAirportID: f[FieldDestinationAirportID],
		Codeshare:            f[FieldCodeshare],
		Stops:                f[FieldStops],
		Equipment:            f[FieldEquipment],
		Fields:               fields,
	}
}
