package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func (v *FilterChangeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = FilterChangeValue{}
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &v.Text)
	case '[':
		return json.Unmarshal(data, &v.List)
	default:
		return fmt.Errorf("filter value must be a string or a list of strings")
	}
}

func (v FilterChangeValue) MarshalJSON() ([]byte, error) {
	if v.List != nil {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}
