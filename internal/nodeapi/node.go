package nodeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is the decoded form of a positional role array. Only the roles this
// client understands are kept; everything else is dropped at decode time.
type Node struct {
	Title     string
	Type      string
	AudioType string
	Path      string
	Value     json.RawMessage
	Edit      json.RawMessage
	MediaData json.RawMessage
}

// UnmarshalJSON decodes a node from the device's positional array. Short
// arrays, nulls and non-string values in string positions leave the
// corresponding field at its zero value.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("node is not a role array: %w", err)
	}
	*n = Node{
		Title:     stringAt(raw, IndexTitle),
		Type:      stringAt(raw, IndexType),
		AudioType: stringAt(raw, IndexAudioType),
		Path:      stringAt(raw, IndexPath),
		Value:     rawAt(raw, IndexValue),
		Edit:      rawAt(raw, IndexEdit),
		MediaData: rawAt(raw, IndexMediaData),
	}
	return nil
}

// RowPage is the body returned by getRows.
type RowPage struct {
	Rows []Node `json:"rows"`
}

// Page is a half-open row range [From, To).
type Page struct {
	From int
	To   int
}

// DefaultPage covers a full preset list. Longer containers must be paged by the caller.
var DefaultPage = Page{From: 0, To: 20}

func rawAt(raw []json.RawMessage, idx int) json.RawMessage {
	if idx >= len(raw) {
		return nil
	}
	v := bytes.TrimSpace(raw[idx])
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil
	}
	return v
}

func stringAt(raw []json.RawMessage, idx int) string {
	v := rawAt(raw, idx)
	if v == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}
