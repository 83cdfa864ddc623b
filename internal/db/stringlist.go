package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON text column.
// sqlite has no native array type, so list-valued portfolio fields
// (descriptions, tech stacks, responsibilities, ...) round-trip through
// JSON the same way the records are served to clients.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported string list source %T", src)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// SocialLinks stores the fixed-key social link mapping as a JSON text
// column. Unknown keys are dropped on the way in by the about service.
type SocialLinks map[string]string

// Value implements driver.Valuer.
func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *SocialLinks) Scan(src interface{}) error {
	if src == nil {
		*s = SocialLinks{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("unsupported social links source")
	}

	if len(data) == 0 {
		*s = SocialLinks{}
		return nil
	}

	var links map[string]string
	if err := json.Unmarshal(data, &links); err != nil {
		return err
	}
	*s = links
	return nil
}
