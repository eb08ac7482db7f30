package repository

import (
	"strconv"
	"strings"

	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// nullSentinels are model outputs that mean "no value". Compared
// case-insensitively after trimming.
var nullSentinels = map[string]struct{}{
	"":             {},
	"-":            {},
	"n/a":          {},
	"none":         {},
	"null":         {},
	"not provided": {},
	"unclear":      {},
}

// isNullToken reports whether a raw extracted value should be stored as NULL.
func isNullToken(s string) bool {
	_, ok := nullSentinels[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// ConvertDate normalizes a form date into YYYY-MM-DD. Accepted inputs are
// DD/MM/YYYY, DD-MM-YYYY, YYYY/MM/DD and YYYY-MM-DD; anything else comes back
// empty. The form is a day-first document, so ambiguous dates resolve
// day-first.
func ConvertDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	sep := "/"
	if !strings.Contains(s, "/") {
		if !strings.Contains(s, "-") {
			return ""
		}
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return ""
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return ""
		}
	}
	var y, m, d string
	if len(parts[0]) == 4 {
		y, m, d = parts[0], parts[1], parts[2]
	} else if len(parts[2]) == 4 {
		y, m, d = parts[2], parts[1], parts[0]
	} else {
		return ""
	}
	if len(m) == 1 {
		m = "0" + m
	}
	if len(d) == 1 {
		d = "0" + d
	}
	if len(m) != 2 || len(d) != 2 {
		return ""
	}
	return y + "-" + m + "-" + d
}

// bindValue converts a raw extracted string to the driver value for a column.
// Sentinels and unparseable typed values map to NULL so the database never
// stores placeholder junk.
func bindValue(c Column, raw string) any {
	if isNullToken(raw) {
		return nil
	}
	raw = strings.TrimSpace(raw)
	switch c.Kind {
	case schema.KindDate:
		d := ConvertDate(raw)
		if d == "" {
			return nil
		}
		return d
	case schema.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil
		}
		return n
	case schema.KindDecimal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return raw
	}
}
