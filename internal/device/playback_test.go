package device

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/five82/radioctl/internal/nodeapi"
)

func TestDecodePlayback(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Playback
	}{
		{
			name:  "track with metadata",
			value: `{"trackRoles":{"title":"X","mediaData":{"metaData":{"album":"A","artist":"B"}}}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "X", Album: "A", Artist: "B"},
		},
		{
			name:  "track with service override",
			value: `{"trackRoles":{"title":"News","mediaData":{"metaData":{"serviceNameOverride":"TuneIn"}}}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "News", Service: "TuneIn"},
		},
		{
			name:  "track without media data",
			value: `{"trackRoles":{"title":"Jazz"}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "Jazz"},
		},
		{
			name:  "media roles",
			value: `{"mediaRoles":{"title":"Radio One"}}`,
			want:  Playback{Kind: PlaybackMedia, Title: "Radio One"},
		},
		{
			name:  "track roles win over media roles",
			value: `{"trackRoles":{"title":"T"},"mediaRoles":{"title":"M"}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "T"},
		},
		{
			name:  "track roles without title",
			value: `{"trackRoles":{"mediaData":{}}}`,
			want:  Playback{},
		},
		{
			name:  "track with non-string album",
			value: `{"trackRoles":{"title":"X","mediaData":{"metaData":{"album":123,"artist":"B"}}}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "X", Artist: "B"},
		},
		{
			name:  "track with media roles of another shape",
			value: `{"trackRoles":{"title":"X"},"mediaRoles":{"title":"Y","type":5}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "X"},
		},
		{
			name:  "track with media data array",
			value: `{"trackRoles":{"title":"X","mediaData":[]}}`,
			want:  Playback{Kind: PlaybackTrack, Title: "X"},
		},
		{
			name:  "media roles with odd modifiable",
			value: `{"mediaRoles":{"title":"Y","modifiable":"yes"}}`,
			want:  Playback{Kind: PlaybackMedia, Title: "Y"},
		},
		{
			name:  "track title null falls back to media",
			value: `{"trackRoles":{"title":null},"mediaRoles":{"title":"Y"}}`,
			want:  Playback{Kind: PlaybackMedia, Title: "Y"},
		},
		{
			name:  "track title not a string",
			value: `{"trackRoles":{"title":7}}`,
			want:  Playback{},
		},
		{
			name:  "neither key",
			value: `{"state":"stopped"}`,
			want:  Playback{},
		},
		{
			name:  "not an object",
			value: `"playing"`,
			want:  Playback{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodePlayback(nodeapi.Node{Value: json.RawMessage(tt.value)})
			if got != tt.want {
				t.Fatalf("DecodePlayback = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodePlayback_MissingValueIsIdle(t *testing.T) {
	got := DecodePlayback(nodeapi.Node{Title: "Player"})
	if got.Playing() {
		t.Fatalf("Playing = true, want idle for missing value")
	}
}

func TestCurrent_ReadsPlayerData(t *testing.T) {
	f := newFakeNodes()
	f.nodes[PlayerDataPath] = nodeapi.Node{Value: json.RawMessage(`{"mediaRoles":{"title":"Jazz FM"}}`)}

	got, err := New(f).Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if got.Kind != PlaybackMedia || got.Title != "Jazz FM" {
		t.Fatalf("Current = %#v, want media Jazz FM", got)
	}
}

func TestCurrent_PropagatesReadError(t *testing.T) {
	f := newFakeNodes()
	boom := errors.New("boom")
	f.readErr[PlayerDataPath] = boom

	if _, err := New(f).Current(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Current error = %v, want wrapped boom", err)
	}
}

func TestStop_WritesStopCommand(t *testing.T) {
	f := newFakeNodes()
	if err := New(f).Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if len(f.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(f.writes))
	}
	w := f.writes[0]
	if w.path != PlayerControlPath || w.role != nodeapi.RoleActivate || string(w.value) != `{"control":"stop"}` {
		t.Fatalf("write = %#v, want stop command on player control", w)
	}
}

func TestStop_StatusError(t *testing.T) {
	f := newFakeNodes()
	f.writeErr = &nodeapi.StatusError{Endpoint: "/api/setData", Path: PlayerControlPath, Status: 500}
	if err := New(f).Stop(context.Background()); nodeapi.HTTPStatus(err) != 500 {
		t.Fatalf("Stop error = %v, want status 500", err)
	}
}

func TestPlaybackKind_MarshalText(t *testing.T) {
	data, err := json.Marshal(Playback{Kind: PlaybackTrack, Title: "X"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"kind":"track","title":"X"}` {
		t.Fatalf("json = %s", data)
	}
}
