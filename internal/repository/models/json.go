package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"interview-prep/internal/domain"
)

// StringSlice stores a string array as a JSONB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	raw, err := jsonBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if raw == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

// QuestionList stores an interview's ordered question list as JSONB.
type QuestionList []domain.Question

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	raw, err := jsonBytes("QuestionList", value)
	if err != nil {
		return err
	}
	if raw == nil {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(raw, q)
}

// Analysis stores a resume's derived analysis as JSONB.
type Analysis domain.ResumeAnalysis

// Value implements the driver.Valuer interface
func (a Analysis) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *Analysis) Scan(value interface{}) error {
	raw, err := jsonBytes("Analysis", value)
	if err != nil {
		return err
	}
	if raw == nil {
		*a = Analysis{}
		return nil
	}
	return json.Unmarshal(raw, a)
}

// jsonBytes normalizes a scanned driver value into a JSON payload.
// It returns nil bytes for DB NULL, empty and literal "null" values.
func jsonBytes(typeName string, value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("%s Scan: unsupported type %T", typeName, value)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}
