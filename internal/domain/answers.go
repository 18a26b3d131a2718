package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the value types a form answer can hold.
type AnswerKind int

const (
	AnswerString AnswerKind = iota
	AnswerList
	AnswerBool
)

// AnswerValue is a tagged union over the free-form answer payloads the
// application form produces: a string, a list of strings (multi-select
// questions like familiar_areas), or a boolean (consent checkboxes).
type AnswerValue struct {
	kind AnswerKind
	str  string
	list []string
	b    bool
}

func StringAnswer(s string) AnswerValue {
	return AnswerValue{kind: AnswerString, str: s}
}

func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{kind: AnswerList, list: items}
}

func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{kind: AnswerBool, b: b}
}

func (v AnswerValue) Kind() AnswerKind { return v.kind }

// Text returns the string payload; empty unless Kind is AnswerString.
func (v AnswerValue) Text() string { return v.str }

// List returns the list payload; nil unless Kind is AnswerList.
func (v AnswerValue) List() []string { return v.list }

// Bool returns the boolean payload; false unless Kind is AnswerBool.
func (v AnswerValue) Bool() bool { return v.b }

// Export returns the value in the shape the CSV exporter understands:
// []string for lists, plain values otherwise.
func (v AnswerValue) Export() any {
	switch v.kind {
	case AnswerList:
		return v.list
	case AnswerBool:
		return v.b
	default:
		return v.str
	}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Export())
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = StringAnswer("")
	case string:
		*v = StringAnswer(t)
	case bool:
		*v = BoolAnswer(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, fmt.Sprint(item))
		}
		*v = ListAnswer(items...)
	default:
		// Numbers and anything else degrade to their string form.
		*v = StringAnswer(fmt.Sprint(t))
	}
	return nil
}

// AnswerMap is the schema-less question-to-answer bag stored in the
// answers jsonb column.
type AnswerMap map[string]AnswerValue

// Value implements driver.Valuer so the map round-trips through jsonb.
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *AnswerMap) Scan(src any) error {
	if src == nil {
		*m = AnswerMap{}
		return nil
	}
	var data []byte
	switch t := src.(type) {
	case []byte:
		data = t
	case string:
		data = []byte(t)
	default:
		return fmt.Errorf("unsupported answers column type %T", src)
	}
	if len(data) == 0 {
		*m = AnswerMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}
