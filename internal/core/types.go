// MentorHive | 2026
// types.go

package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice stores a []string as JSONB. The pgx stdlib driver has no
// native []string scan path through database/sql, so tag lists round-trip
// through JSON instead.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("marshal string slice: %w", err)
	}

	return string(b), nil
}

func (s *StringSlice) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string slice: unsupported type %T", src)
	}

	return json.Unmarshal(data, (*[]string)(s))
}
