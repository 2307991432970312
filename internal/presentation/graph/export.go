package graph

import "encoding/json"

// ExportJSON marshals the view for machine consumers (the HTTP API and the
// graph command's json format). Output is indented; the node and edge order
// is the deterministic collection order.
func ExportJSON(view *View) ([]byte, error) {
	return json.MarshalIndent(view, "", "  ")
}
