package twsfield

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// legacyZoneOffsets is the finite table of legacy timezone abbreviations
// the server still emits in some timestamp fields. It is encoded as data,
// not scattered conditionals, per the design notes: one map, one lookup.
var legacyZoneOffsets = map[string]int{
	"MEZ":  1 * 3600,
	"MESZ": 2 * 3600,
	"EST":  -5 * 3600,
	"EDT":  -4 * 3600,
	"PST":  -8 * 3600,
	"PDT":  -7 * 3600,
	"CST":  -6 * 3600,
	"CDT":  -5 * 3600,
	"MST":  -7 * 3600,
	"MDT":  -6 * 3600,
	"GMT":  0,
	"UTC":  0,
	"UT":   0,
}

// ParseTimestamp decodes the enumerated set of timestamp formats the
// protocol uses: YYYYMMDD[-]HH:MM:SS[.fff], RFC-3339, "YYYYMMDD HH:MM:SS
// ZONE" (IANA name or legacy alias), and 10/13/19-digit unix epoch
// (seconds/milliseconds/nanoseconds, auto-detected by digit count). It
// never guesses: an input that doesn't unambiguously match one of these
// shapes is a decode error.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, ok := parseEpoch(raw); ok {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	if t, ok, err := parseZonedCompact(raw); ok {
		return t, err
	}

	if t, ok, err := parseCompactDateTime(raw); ok {
		return t, err
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", raw)
}

// parseEpoch recognizes all-digit strings of exactly 10, 13, or 19 digits
// as unix seconds, milliseconds, or nanoseconds respectively. Any other
// digit count is ambiguous and is left to the other parsers (which will
// themselves fail, surfacing a decode error rather than a silent guess).
func parseEpoch(raw string) (time.Time, bool) {
	for _, c := range raw {
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	switch len(raw) {
	case 10:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(v, 0).UTC(), true
	case 13:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(v).UTC(), true
	case 19:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(0, v).UTC(), true
	default:
		return time.Time{}, false
	}
}

// parseZonedCompact handles "YYYYMMDD HH:MM:SS ZONE" where ZONE is an
// IANA name (e.g. Europe/Berlin) or a legacy alias (MEZ, EST, ...).
func parseZonedCompact(raw string) (time.Time, bool, error) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		return time.Time{}, false, nil
	}
	datePart, timePart, zone := parts[0], parts[1], parts[2]
	if len(datePart) != 8 {
		return time.Time{}, false, nil
	}
	for _, c := range datePart {
		if c < '0' || c > '9' {
			return time.Time{}, false, nil
		}
	}

	layout := "20060102 15:04:05"
	if strings.Contains(timePart, ".") {
		layout = "20060102 15:04:05.000"
	}

	if off, ok := legacyZoneOffsets[zone]; ok {
		loc := time.FixedZone(zone, off)
		t, err := time.ParseInLocation(layout, datePart+" "+timePart, loc)
		if err != nil {
			return time.Time{}, true, &DecodeError{Field: "timestamp", Token: raw, Err: err}
		}
		return t, true, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, true, &DecodeError{Field: "timestamp", Token: raw, Err: fmt.Errorf("unknown timezone %q: %w", zone, err)}
	}
	t, err := time.ParseInLocation(layout, datePart+" "+timePart, loc)
	if err != nil {
		return time.Time{}, true, &DecodeError{Field: "timestamp", Token: raw, Err: err}
	}
	return t, true, nil
}

// parseCompactDateTime handles YYYYMMDD[-]HH:MM:SS[.fff] with no zone
// (interpreted as UTC, matching the server's convention for unzoned
// historical-data timestamps).
func parseCompactDateTime(raw string) (time.Time, bool, error) {
	body := raw
	sep := "-"
	if len(raw) >= 9 && raw[8] != '-' {
		// Some fields use a bare space between date and time instead of
		// the dash the format name suggests.
		sep = " "
	}
	if len(body) < 15 {
		return time.Time{}, false, nil
	}
	datePart := body[:8]
	for _, c := range datePart {
		if c < '0' || c > '9' {
			return time.Time{}, false, nil
		}
	}
	rest := body[8:]
	rest = strings.TrimPrefix(rest, sep)

	layout := "20060102 15:04:05"
	if strings.Contains(rest, ".") {
		layout = "20060102 15:04:05.000"
	}
	t, err := time.ParseInLocation(layout, datePart+" "+rest, time.UTC)
	if err != nil {
		return time.Time{}, true, &DecodeError{Field: "timestamp", Token: raw, Err: err}
	}
	return t, true, nil
}

// Timestamp decodes a required timestamp field using ParseTimestamp.
func (r *Reader) Timestamp(field string) (time.Time, error) {
	tok, err := r.next(field)
	if err != nil {
		return time.Time{}, err
	}
	if tok == "" {
		return time.Time{}, nil
	}
	t, err := ParseTimestamp(tok)
	if err != nil {
		return time.Time{}, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return t, nil
}

func (r *Reader) OptionalTimestamp(field string) (*time.Time, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(tok)
	if err != nil {
		return nil, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return &t, nil
}

// AccountUpdateTime constructs today's timestamp (UTC) at the given
// "HH:MM" wall time, as the account-update-time message requires.
func AccountUpdateTime(hhmm string) (time.Time, error) {
	now := time.Now().UTC()
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, &DecodeError{Field: "acctUpdateTime", Token: hhmm, Err: err}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
