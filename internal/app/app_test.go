package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/radioctl/internal/device"
	"github.com/five82/radioctl/internal/nodeapi"
	"github.com/five82/radioctl/internal/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
address = "radio.local"
timeout = "3s"
output = "yaml"
volume_step = 4
`)

	s, err := Resolve(path, "", 0, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if s.Address != "radio.local" || s.Timeout != 3*time.Second || s.Format != render.FormatYAML || s.VolumeStep != 4 {
		t.Fatalf("settings = %#v, want config values", s)
	}

	s, err = Resolve(path, "10.0.0.9", time.Second, "json")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if s.Address != "10.0.0.9" || s.Timeout != time.Second || s.Format != render.FormatJSON {
		t.Fatalf("settings = %#v, want flag values", s)
	}
}

func TestResolve_RequiresAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := Resolve(path, "  ", 0, ""); err == nil || !strings.Contains(err.Error(), "address is required") {
		t.Fatalf("Resolve error = %v, want address required", err)
	}
}

func TestResolve_RejectsUnknownOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := Resolve(path, "radio.local", 0, "xml"); err == nil {
		t.Fatalf("Resolve returned nil error, want output error")
	}
}

func TestRun_EndToEnd(t *testing.T) {
	var setValues []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/api/getData":
			row := make([]any, nodeapi.RoleCount)
			switch q.Get("path") {
			case device.VolumePath:
				row[nodeapi.IndexValue] = map[string]any{"type": "i32_", "i32_": 10}
				row[nodeapi.IndexEdit] = map[string]any{"max": 40}
			default:
				http.Error(w, "busy", http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(row)
		case "/api/setData":
			setValues = append(setValues, q.Get("value"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	var out, errOut bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Address:    server.URL,
		Request:    Request{Volume: VolumeSet, Level: -4},
		Stdout:     &out,
		Stderr:     &errOut,
	})
	if !errors.Is(err, ErrActionFailed) {
		t.Fatalf("Run error = %v, want ErrActionFailed from current playback", err)
	}
	if errOut.String() != "Error while getting current\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
	if len(setValues) != 1 || setValues[0] != `{"type":"i32_","i32_":0}` {
		t.Fatalf("set values = %v, want one clamped write of 0", setValues)
	}
	if !strings.HasPrefix(out.String(), "Volume: |") {
		t.Fatalf("stdout = %q, want volume line", out.String())
	}
}
