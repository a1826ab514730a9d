package utils

import "fmt"

// ToString converts loosely-typed JSON values to string. Router firmware
// responses are not consistent about value types, so anything may arrive
// as a string, number, or null.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
