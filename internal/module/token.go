// Package module names and reads the CMS_VAR / CMS_VALUE tokens a CMS module
// uses to store its input values per template container.
package module

import (
	"fmt"

	"cmsselect/internal/security"
)

// Token is one module input slot. Values is the container's CMS_VALUE array.
type Token struct {
	Container int
	Index     int
	value     any
}

// NewToken binds the slot index of container to its stored value in values.
// A missing entry reads as "".
func NewToken(container, index int, values map[int]any) Token {
	t := Token{Container: container, Index: index}
	if v, ok := values[index]; ok {
		t.value = v
	}
	return t
}

// Var returns the form field name, e.g. "C3CMS_VAR[1]".
func (t Token) Var() string {
	return fmt.Sprintf("C%dCMS_VAR[%d]", t.Container, t.Index)
}

// ValueName returns the name of the container's value array, e.g. "C3CMS_VALUE".
func (t Token) ValueName() string {
	return fmt.Sprintf("C%dCMS_VALUE", t.Container)
}

// Value returns the raw stored value.
func (t Token) Value() any {
	return t.value
}

func (t Token) String() string {
	return security.ToString(t.value)
}

// Int returns the stored value coerced to an integer.
func (t Token) Int() int {
	return security.ToInteger(t.value)
}

// Bool returns the stored value coerced to a boolean.
func (t Token) Bool() bool {
	return security.ToBoolean(t.value)
}
