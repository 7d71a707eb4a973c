package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errNotScalar = errors.New("not a scalar")

// UnmarshalJSON accepts numbers and booleans as text so that a mistyped field
// reaches validation instead of failing the whole body. Arrays and objects
// are reported as field violations.
func (r *ContactRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		key   string
		label string
		dst   *string
	}{
		{"name", "Name", &r.Name},
		{"email", "Email", &r.Email},
		{"subject", "Subject", &r.Subject},
		{"message", "Message", &r.Message},
	}

	var violations []FieldViolation
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		s, err := scalarText(v)
		if err != nil {
			violations = append(violations, FieldViolation{Field: f.key, Message: f.label + " must be a string"})
			continue
		}
		*f.dst = s
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func scalarText(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", errNotScalar
	}
}
