package device

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/five82/radioctl/internal/nodeapi"
)

type write struct {
	path  string
	role  string
	value json.RawMessage
}

// fakeNodes is an in-memory node tree. Writes to the volume node update the
// level so step sequences behave like the device.
type fakeNodes struct {
	nodes    map[string]nodeapi.Node
	rows     map[string][]nodeapi.Node
	readErr  map[string]error
	writeErr error
	writes   []write
	reads    int
}

func newFakeNodes() *fakeNodes {
	return &fakeNodes{
		nodes:   map[string]nodeapi.Node{},
		rows:    map[string][]nodeapi.Node{},
		readErr: map[string]error{},
	}
}

func (f *fakeNodes) ReadNode(_ context.Context, path string) (nodeapi.Node, error) {
	f.reads++
	if err := f.readErr[path]; err != nil {
		return nodeapi.Node{}, err
	}
	node, ok := f.nodes[path]
	if !ok {
		return nodeapi.Node{}, &nodeapi.StatusError{Endpoint: "/api/getData", Path: path, Status: 404}
	}
	return node, nil
}

func (f *fakeNodes) ReadRows(_ context.Context, path string, page nodeapi.Page) ([]nodeapi.Node, error) {
	f.reads++
	if err := f.readErr[path]; err != nil {
		return nil, err
	}
	rows := f.rows[path]
	if page.To < len(rows) {
		rows = rows[:page.To]
	}
	return rows, nil
}

func (f *fakeNodes) WriteNode(_ context.Context, path, role string, value any) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.writes = append(f.writes, write{path: path, role: role, value: data})
	if path == VolumePath && role == nodeapi.RoleValue {
		node := f.nodes[VolumePath]
		node.Value = data
		f.nodes[VolumePath] = node
	}
	return nil
}

func (f *fakeNodes) setVolume(current, limit int) {
	f.nodes[VolumePath] = nodeapi.Node{
		Value: json.RawMessage(fmt.Sprintf(`{"type":"i32_","i32_":%d}`, current)),
		Edit:  json.RawMessage(fmt.Sprintf(`{"max":%d}`, limit)),
	}
}
