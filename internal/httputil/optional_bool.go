package httputil

import (
	"fmt"
	"strings"
)

// OptionalBool tracks presence and value of a flag whose absence means
// "use the default":
//   - Present=false: parameter absent
//   - Present=true: Value holds the parsed flag, an empty value counts as true
type OptionalBool struct {
	Present bool
	Value   bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
// When this method is called, the parameter was present.
func (o *OptionalBool) UnmarshalText(text []byte) error {
	o.Present = true
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "1", "true", "yes", "on":
		o.Value = true
	case "0", "false", "no", "off":
		o.Value = false
	default:
		return fmt.Errorf("invalid boolean %q", string(text))
	}
	return nil
}

// Ptr returns nil when absent, otherwise a pointer to the value.
func (o OptionalBool) Ptr() *bool {
	if !o.Present {
		return nil
	}
	v := o.Value
	return &v
}

// Or returns the value when present, def otherwise.
func (o OptionalBool) Or(def bool) bool {
	if !o.Present {
		return def
	}
	return o.Value
}
