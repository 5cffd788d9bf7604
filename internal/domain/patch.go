package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patch holds the raw fields of a JSON create or update body. Fields absent
// from the body leave the target untouched; on optional fields both null and
// the empty string clear the stored value.
type Patch map[string]json.RawMessage

// DecodePatch reads a JSON object from r.
func DecodePatch(r io.Reader) (Patch, error) {
	var p Patch
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Patch{}, nil
		}
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidInput)
	}
	if p == nil {
		p = Patch{}
	}
	return p, nil
}

// Has reports whether key was present in the body.
func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// blank reports whether the raw value is null or "".
func blank(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`))
}

func invalid(key, want string) error {
	return fmt.Errorf("%w: %s must be %s", ErrInvalidInput, key, want)
}

// String sets a required text field. Blank values are stored as "" and left
// for validation to reject.
func (p Patch) String(key string, dst *string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if blank(raw) {
		*dst = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return invalid(key, "a string")
	}
	*dst = strings.TrimSpace(s)
	return nil
}

// Text sets a text field that has a default: blank values keep def.
func (p Patch) Text(key string, dst *string, def string) error {
	if err := p.String(key, dst); err != nil {
		return err
	}
	if *dst == "" {
		*dst = def
	}
	return nil
}

// OptString sets a nullable text field.
func (p Patch) OptString(key string, dst **string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if blank(raw) {
		*dst = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return invalid(key, "a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*dst = nil
		return nil
	}
	*dst = &s
	return nil
}

// OptUUID sets a nullable reference to another record.
func (p Patch) OptUUID(key string, dst **string) error {
	var s *string
	if err := p.OptString(key, &s); err != nil {
		return err
	}
	if !p.Has(key) {
		return nil
	}
	if s != nil {
		id, err := uuid.Parse(*s)
		if err != nil {
			return invalid(key, "a UUID")
		}
		canonical := id.String()
		s = &canonical
	}
	*dst = s
	return nil
}

// OptDate sets a nullable calendar date.
func (p Patch) OptDate(key string, dst **time.Time) error {
	var s *string
	if err := p.OptString(key, &s); err != nil {
		return err
	}
	if !p.Has(key) {
		return nil
	}
	if s == nil {
		*dst = nil
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return invalid(key, "a date (YYYY-MM-DD)")
	}
	*dst = &t
	return nil
}

// OptDecimal sets a nullable amount given either as a JSON number or as a
// numeric string.
func (p Patch) OptDecimal(key string, dst *decimal.NullDecimal) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if blank(raw) {
		*dst = decimal.NullDecimal{}
		return nil
	}
	text := string(bytes.TrimSpace(raw))
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(raw, &text); err != nil {
			return invalid(key, "a number")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*dst = decimal.NullDecimal{}
			return nil
		}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return invalid(key, "a number")
	}
	*dst = decimal.NewNullDecimal(d)
	return nil
}

// Bool sets a flag; null clears it to false.
func (p Patch) Bool(key string, dst *bool) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if blank(raw) {
		*dst = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return invalid(key, "a boolean")
	}
	*dst = b
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
