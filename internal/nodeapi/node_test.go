package nodeapi

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRoles_IndexAlignment(t *testing.T) {
	names := strings.Split(Roles, ",")
	if len(names) != RoleCount {
		t.Fatalf("len(Roles) = %d, want %d", len(names), RoleCount)
	}
	tests := map[int]string{
		IndexTitle:     "title",
		IndexType:      "type",
		IndexAudioType: "audioType",
		IndexPath:      "path",
		IndexValue:     "value",
		IndexEdit:      "edit",
		IndexMediaData: "mediaData",
	}
	for idx, want := range tests {
		if names[idx] != want {
			t.Errorf("Roles[%d] = %q, want %q", idx, names[idx], want)
		}
	}
}

func TestNode_UnmarshalTolerantOfShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Node
	}{
		{"empty array", `[]`, Node{}},
		{"title only", `["Radio"]`, Node{Title: "Radio"}},
		{"null title", `[null,null,"audio"]`, Node{Type: "audio"}},
		{"non-string title", `[42,null,{"x":1}]`, Node{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Node
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if got.Title != tt.want.Title || got.Type != tt.want.Type || got.Value != nil {
				t.Fatalf("node = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNode_UnmarshalKeepsMediaDataVerbatim(t *testing.T) {
	row := make([]any, RoleCount)
	row[IndexTitle] = "Jazz FM"
	row[IndexPath] = "/app:/presets/3"
	row[IndexMediaData] = map[string]any{"resources": []any{map[string]any{"uri": "http://stream"}}}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Node
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got.Path != "/app:/presets/3" {
		t.Fatalf("Path = %q", got.Path)
	}
	if string(got.MediaData) != `{"resources":[{"uri":"http://stream"}]}` {
		t.Fatalf("MediaData = %s", got.MediaData)
	}
}

func TestNode_UnmarshalRejectsObjects(t *testing.T) {
	var got Node
	if err := json.Unmarshal([]byte(`{"title":"x"}`), &got); err == nil {
		t.Fatalf("Unmarshal returned nil error, want error")
	}
}
