package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/five82/radioctl/internal/nodeapi"
)

func presetRows(n int) []nodeapi.Node {
	rows := make([]nodeapi.Node, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, nodeapi.Node{
			Title:     fmt.Sprintf("Station %d", i+1),
			Type:      "container",
			AudioType: "audioBroadcast",
			Path:      fmt.Sprintf("/app:/presets/%d", i),
			MediaData: json.RawMessage(fmt.Sprintf(`{"resources":[{"uri":"http://stream/%d"}]}`, i)),
		})
	}
	return rows
}

func TestPresets_NumberedInFetchOrder(t *testing.T) {
	f := newFakeNodes()
	f.rows[PresetsPath] = presetRows(3)

	presets, err := New(f).Presets(context.Background())
	if err != nil {
		t.Fatalf("Presets returned error: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("len(presets) = %d, want 3", len(presets))
	}
	for i, p := range presets {
		if p.Index != i+1 || p.Title != fmt.Sprintf("Station %d", i+1) {
			t.Errorf("presets[%d] = %#v, want index %d", i, p, i+1)
		}
	}
}

func TestPlayPreset_SendsRowFields(t *testing.T) {
	rows := presetRows(3)
	for i := 1; i <= len(rows); i++ {
		f := newFakeNodes()
		f.rows[PresetsPath] = rows

		got, err := New(f).PlayPreset(context.Background(), i)
		if err != nil {
			t.Fatalf("PlayPreset(%d) returned error: %v", i, err)
		}
		if got.Title != rows[i-1].Title {
			t.Fatalf("PlayPreset(%d) = %#v, want row %d", i, got, i-1)
		}
		if len(f.writes) != 1 {
			t.Fatalf("writes = %d, want 1", len(f.writes))
		}
		w := f.writes[0]
		if w.path != PlayerControlPath || w.role != nodeapi.RoleActivate {
			t.Fatalf("write target = %s/%s", w.path, w.role)
		}

		var cmd struct {
			Control    string `json:"control"`
			MediaRoles struct {
				Title      string          `json:"title"`
				Type       string          `json:"type"`
				AudioType  string          `json:"audioType"`
				Modifiable bool            `json:"modifiable"`
				Path       string          `json:"path"`
				MediaData  json.RawMessage `json:"mediaData"`
			} `json:"mediaRoles"`
		}
		if err := json.Unmarshal(w.value, &cmd); err != nil {
			t.Fatalf("decode command %s: %v", w.value, err)
		}
		want := rows[i-1]
		mr := cmd.MediaRoles
		if cmd.Control != "play" || !mr.Modifiable {
			t.Fatalf("command = %s, want modifiable play", w.value)
		}
		if mr.Title != want.Title || mr.Type != want.Type || mr.AudioType != want.AudioType || mr.Path != want.Path {
			t.Fatalf("mediaRoles = %#v, want fields of row %d", mr, i-1)
		}
		if string(mr.MediaData) != string(want.MediaData) {
			t.Fatalf("mediaData = %s, want %s verbatim", mr.MediaData, want.MediaData)
		}
	}
}

func TestPlayPreset_OutOfRangeIssuesNoWrite(t *testing.T) {
	for _, idx := range []int{0, -1, 4, 21} {
		f := newFakeNodes()
		f.rows[PresetsPath] = presetRows(3)

		_, err := New(f).PlayPreset(context.Background(), idx)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("PlayPreset(%d) error = %v, want IndexError", idx, err)
		}
		if ie.Index != idx || ie.Count != 3 {
			t.Fatalf("IndexError = %#v, want index %d count 3", ie, idx)
		}
		if len(f.writes) != 0 {
			t.Fatalf("PlayPreset(%d) wrote %d times, want none", idx, len(f.writes))
		}
	}
}

func TestPlayPreset_ListFailure(t *testing.T) {
	f := newFakeNodes()
	f.readErr[PresetsPath] = &nodeapi.StatusError{Endpoint: "/api/getRows", Path: PresetsPath, Status: 503}

	_, err := New(f).PlayPreset(context.Background(), 1)
	if nodeapi.HTTPStatus(err) != 503 {
		t.Fatalf("PlayPreset error = %v, want status 503", err)
	}
}

func TestPlayPreset_WriteFailureReturnsPreset(t *testing.T) {
	f := newFakeNodes()
	f.rows[PresetsPath] = presetRows(2)
	f.writeErr = &nodeapi.StatusError{Endpoint: "/api/setData", Path: PlayerControlPath, Status: 500}

	got, err := New(f).PlayPreset(context.Background(), 2)
	if nodeapi.HTTPStatus(err) != 500 {
		t.Fatalf("PlayPreset error = %v, want status 500", err)
	}
	if got.Title != "Station 2" {
		t.Fatalf("preset = %#v, want Station 2 for error reporting", got)
	}
}
