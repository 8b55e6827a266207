package event

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the identifier the Event Service assigns. It is opaque to the client:
// JSON numbers and strings are both accepted and kept in their textual form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Event struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

type createEventRequest struct {
	Title string `json:"title"`
}
