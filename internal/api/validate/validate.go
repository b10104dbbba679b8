// Package validate holds the per-endpoint request schemas. Each schema
// function returns parsed, typed data together with a FieldErrors report;
// an empty report means the input passed.
package validate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// FieldErrors maps a field name to the list of violations on it.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Report is the wire shape of a validation failure: per-field message lists
// plus a (here always empty) top-level list, nested under "error" by the
// handler.
type Report struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (f FieldErrors) Report() Report {
	return Report{FormErrors: []string{}, FieldErrors: f}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

func Register(email, username, password string) (RegisterInput, FieldErrors) {
	errs := FieldErrors{}
	if !emailRe.MatchString(email) {
		errs.add("email", "Invalid email")
	}
	if len(username) < 3 {
		errs.add("username", "String must contain at least 3 character(s)")
	}
	if len(username) > 24 {
		errs.add("username", "String must contain at most 24 character(s)")
	}
	if username != "" && !usernameRe.MatchString(username) {
		errs.add("username", "Solo letras/números/_")
	}
	if len(password) < 6 {
		errs.add("password", "String must contain at least 6 character(s)")
	}
	return RegisterInput{Email: email, Username: username, Password: password}, errs
}

type LoginInput struct {
	Username string
	Password string
}

func Login(username, password string) (LoginInput, FieldErrors) {
	errs := FieldErrors{}
	if username == "" {
		errs.add("username", "String must contain at least 1 character(s)")
	}
	if password == "" {
		errs.add("password", "String must contain at least 1 character(s)")
	}
	return LoginInput{Username: username, Password: password}, errs
}

type WrapInput struct {
	Title string
	Kind  string
	Year  int
}

// WrapCreate coerces year from either a JSON number or a numeric string.
func WrapCreate(title, kind string, year json.RawMessage) (WrapInput, FieldErrors) {
	errs := FieldErrors{}
	if title == "" {
		errs.add("title", "String must contain at least 1 character(s)")
	}
	if kind == "" {
		errs.add("kind", "String must contain at least 1 character(s)")
	}
	y, ok := coerceInt(year)
	if !ok {
		errs.add("year", "Expected integer")
	}
	return WrapInput{Title: title, Kind: kind, Year: y}, errs
}

func coerceInt(raw json.RawMessage) (int, bool) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

type ItemInput struct {
	Name  string
	Date  time.Time
	Notes *string
}

// Item accepts RFC 3339 timestamps or bare YYYY-MM-DD dates. Notes may be
// omitted, but when present must be a string: an explicit JSON null is a
// field error, not an absent value.
func Item(name, date string, notes json.RawMessage) (ItemInput, FieldErrors) {
	errs := FieldErrors{}
	if name == "" {
		errs.add("name", "String must contain at least 1 character(s)")
	}
	d, err := parseDate(date)
	if err != nil {
		errs.add("date", "Invalid date")
	}
	var notesVal *string
	if len(notes) > 0 {
		var s string
		if err := json.Unmarshal(notes, &s); err != nil {
			errs.add("notes", "Expected string")
		} else {
			notesVal = &s
		}
	}
	return ItemInput{Name: name, Date: d, Notes: notesVal}, errs
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
