// Package nodeapi provides an HTTP client for the radio's role-based node API.
//
// # Overview
//
// The device exposes its control surface as a tree of nodes addressed by
// path (for example "player:volume" or "/app:/presets"). Every node is
// returned as a positional JSON array whose meaning is defined by the
// role list sent with the request. This package owns that role list and
// decodes the positions it understands into a Node record, so no caller
// ever indexes a raw array.
//
// # API Endpoints
//
//   - GET /api/getData?path=&roles=: one node as a role array
//   - GET /api/getRows?path=&roles=&from=&to=: {"rows": [role arrays]}
//   - GET /api/setData?path=&role=&value=: write one role, value JSON encoded
//
// # Client Usage
//
//	client, err := nodeapi.NewClient("192.168.1.40")
//	if err != nil {
//		return err
//	}
//	node, err := client.ReadNode(ctx, "player:volume")
//
// # Error Handling
//
// A round trip that does not return 200 fails with *StatusError. Network
// failures are wrapped as "execute request: ..." and malformed bodies as
// "decode response: ...".
//
// # Design Rationale
//
// The client is deliberately shape agnostic: no retries, no caching and
// no knowledge of what a given node's value means. Firmware differences
// are handled one layer up in package device.
package nodeapi
