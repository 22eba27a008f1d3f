// Package gateway implements the ComStar protocol-normalization adapter:
// it translates vendor payload maps into canonical trading entities and
// builds validated outbound requests for the vendor transport.
package gateway

import (
	"fmt"
	"strconv"
)

// Payload is an already-deserialized vendor message: field name -> value.
// The transport collaborator owns deserialization; this layer only reads
// fields tolerantly: a missing or mistyped field reads as the zero value.
type Payload map[string]any

// Has reports whether the field is present.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Str reads a string field. Non-string scalars are rendered naturally.
func (p Payload) Str(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(v)
	}
}

// Float reads a numeric field. The venue is inconsistent about sending
// numbers as strings, so both forms are accepted.
func (p Payload) Float(key string) float64 {
	v, ok := p[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int reads an integral field.
func (p Payload) Int(key string) int64 {
	v, ok := p[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Bool reads a boolean field.
func (p Payload) Bool(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Map reads a nested payload field.
func (p Payload) Map(key string) Payload {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case Payload:
		return m
	case map[string]any:
		return Payload(m)
	default:
		return nil
	}
}
