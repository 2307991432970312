package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/presentation/graph"
)

// viewerFixture builds a small differentiated graph: d = a*b + c.
func viewerFixture(t *testing.T) *graph.View {
	t.Helper()
	a := tendril.New(2, tendril.WithLabel("a"))
	b := tendril.New(-3, tendril.WithLabel("b"))
	c := tendril.New(10, tendril.WithLabel("c"))
	d := a.Mul(b).Add(c)
	d.SetLabel("d")
	d.Backward()
	return graph.Collect(d)
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "tendril-web", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "0.1.0", resp["api_version"])
	// a, b, c, a*b, d
	assert.Equal(t, float64(5), resp["nodes"])
	assert.Equal(t, float64(4), resp["edges"])
}

func TestGetViewerPage(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Tendril Graph Viewer")
	assert.Contains(t, rr.Body.String(), "mermaid")
	assert.Contains(t, rr.Body.String(), "/graph.mmd")
}

func TestGetGraphJSON(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/api/graph", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var view graph.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Len(t, view.Nodes, 5)
	assert.Len(t, view.Edges, 4)
	assert.Equal(t, "d", view.Nodes[0].Label)
	assert.Equal(t, 4.0, view.Nodes[0].Data)
	assert.Equal(t, 1.0, view.Nodes[0].Grad)
}

func TestGetGraphDOT(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/graph.dot", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/vnd.graphviz")
	assert.Contains(t, rr.Body.String(), "digraph tendril {")
	assert.Contains(t, rr.Body.String(), "rankdir=LR;")
}

func TestGetGraphMermaid(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	req, _ := http.NewRequest("GET", "/graph.mmd", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "graph LR\n"))
	assert.Contains(t, rr.Body.String(), `n0["d | data 4.0000 | grad 1.0000"]`)
}

func TestRenderOptionsApply(t *testing.T) {
	handler := NewHandler(viewerFixture(t),
		WithRenderOptions(&graph.Options{Precision: 2, HighlightGradients: true}))

	req, _ := http.NewRequest("GET", "/graph.mmd", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Contains(t, rr.Body.String(), "data 4.00 ")
	assert.Contains(t, rr.Body.String(), "%% Gradient Overlay")
}

func TestMetricsCountRenders(t *testing.T) {
	handler := NewHandler(viewerFixture(t))

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/graph.dot", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `tendril_graph_renders_total{format="dot"} 2`)
	assert.Contains(t, body, "tendril_graph_nodes 5")
	assert.Contains(t, body, "tendril_graph_edges 4")
}
