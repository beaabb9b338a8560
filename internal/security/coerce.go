// Package security hardens raw values read from the row store before they are
// used. Every record field passes through one of these coercions.
package security

import (
	"strings"

	"github.com/spf13/cast"
)

// ToInteger converts v to an int. Strings are read up to the first non digit
// ("12abc" is 12, "abc" is 0). Values that cannot be converted yield 0.
func ToInteger(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case string:
		return leadingInt(val)
	case []byte:
		return leadingInt(string(val))
	case bool:
		if val {
			return 1
		}
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

// ToString converts v to a string. nil and unsupported values yield "".
func ToString(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// ToBoolean converts v to a bool. Numeric values are true when non zero,
// strings when they hold a truthy literal or a non zero number.
func ToBoolean(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return stringBool(val)
	case []byte:
		return stringBool(string(val))
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return ToInteger(v) != 0
	}
	return b
}

func stringBool(s string) bool {
	s = strings.TrimSpace(s)
	if b, err := cast.ToBoolE(s); err == nil {
		return b
	}
	switch strings.ToLower(s) {
	case "yes", "on":
		return true
	}
	return leadingInt(s) != 0
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	sign, i := 1, 0
	switch s[0] {
	case '-':
		sign, i = -1, 1
	case '+':
		i = 1
	}

	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (maxInt-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	return sign * n
}

const maxInt = int(^uint(0) >> 1)
