package playground

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/jsx/internal/config"
	"github.com/vango-dev/jsx/pkg/vnode"
	"github.com/vango-dev/jsx/pkg/wire"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, cfg *config.Config, opts ...Option) *httptest.Server {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	ts := httptest.NewServer(New(cfg, opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

const doc = `{"tag":"ul","props":{"id":"list"},"children":[{"tag":"li","key":1,"children":"one"}]}`

func TestTransform(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name        string
		query       string
		contentType string
		body        string
		wantType    string
	}{
		{"json default", "", "application/json", doc, "application/json"},
		{"yaml body", "", "application/yaml", "tag: ul\nprops: {id: list}\nchildren:\n  - {tag: li, key: 1, children: one}\n", "application/json"},
		{"sniffed", "?format=json", "", doc, "application/json"},
		{"msgpack", "?format=msgpack", "application/json", doc, wire.Msgpack.ContentType()},
		{"binary", "?format=BINARY", "application/json", doc, wire.Binary.ContentType()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/v1/transform"+tt.query, tt.contentType, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}

			codec, err := wire.Lookup(strings.TrimPrefix(strings.ToLower(tt.query), "?format="))
			if err != nil {
				t.Fatal(err)
			}
			n, err := codec.Unmarshal(body)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if n.Sel != "ul#list" || len(n.Children) != 1 || n.Children[0].Text == nil || *n.Children[0].Text != "one" {
				t.Errorf("snapshot = %+v, want ul#list > li(one)", n)
			}
		})
	}
}

func TestTransformIndent(t *testing.T) {
	ts := newTestServer(t, nil)
	_, body := post(t, ts.URL+"/v1/transform?indent=1", "application/json", `{"tag":"p","children":"x"}`)
	if !strings.Contains(string(body), "\n  \"sel\"") {
		t.Errorf("body = %s, want indented JSON", body)
	}
}

func TestTransformComponents(t *testing.T) {
	badge := func(p vnode.Props) any {
		return vnode.H("span", vnode.Props{"className": "badge"}, p["label"])
	}
	ts := newTestServer(t, nil, WithComponents(map[string]any{"Badge": badge}))

	resp, body := post(t, ts.URL+"/v1/transform", "application/json", `{"tag":"Badge","props":{"label":"new"}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	n, err := wire.JSON.Unmarshal(body)
	if err != nil {
		t.Fatal(err)
	}
	if n.Sel != "span.badge" || n.Text == nil || *n.Text != "new" {
		t.Errorf("snapshot = %+v, want span.badge(new)", n)
	}
}

func TestTransformErrors(t *testing.T) {
	cfg := config.New()
	cfg.Serve.MaxBodyBytes = 64
	ts := newTestServer(t, cfg)

	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"syntax", "", `{"tag":`, http.StatusBadRequest, "E101"},
		{"bad description", "", `{"tag":"div","kids":1}`, http.StatusBadRequest, "E100"},
		{"plain map", "", `{"x":1}`, http.StatusBadRequest, "E102"},
		{"format", "?format=xml", `{"tag":"div"}`, http.StatusBadRequest, "E123"},
		{"class type", "", `{"tag":"div","props":{"className":1}}`, http.StatusUnprocessableEntity, "E160"},
		{"too large", "", `{"tag":"div","children":"` + strings.Repeat("x", 100) + `"}`, http.StatusRequestEntityTooLarge, "E124"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/v1/transform"+tt.query, "application/json", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var e struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("error body %s: %v", body, err)
			}
			if e.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", e.Code, tt.wantCode)
			}
		})
	}
}

func TestLint(t *testing.T) {
	cfg := config.New()
	cfg.Lint.Ignore = []string{"style"}
	ts := newTestServer(t, cfg)

	_, body := post(t, ts.URL+"/v1/lint", "application/json",
		`{"tag":"div","props":{"class":{"a":true},"style":{}},"children":[{"tag":"b","props":{"on":{}}}]}`)

	var got struct {
		Findings []finding `json:"findings"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body %s: %v", body, err)
	}
	want := []finding{
		{Path: "$<div>", Tag: "div", Key: "class", Use: "$class"},
		{Path: "$<div>.children[0]<b>", Tag: "b", Key: "on", Use: "$on or on* attributes"},
	}
	if len(got.Findings) != len(want) {
		t.Fatalf("findings = %+v, want %+v", got.Findings, want)
	}
	for i := range want {
		if got.Findings[i] != want[i] {
			t.Errorf("findings[%d] = %+v, want %+v", i, got.Findings[i], want[i])
		}
	}
}

func TestHealthFormatsAndMetrics(t *testing.T) {
	ts := newTestServer(t, nil)
	post(t, ts.URL+"/v1/transform", "application/json", doc)

	tests := []struct {
		path string
		want string
	}{
		{"/healthz", `"status":"ok"`},
		{"/v1/formats", `"formats":["binary","json","msgpack"]`},
		{"/metrics", `jsx_transforms_total{format="json"} 1`},
		{"/metrics", `jsx_http_requests_total{method="POST",route="/v1/transform",status="200"} 1`},
	}
	for _, tt := range tests {
		resp, err := http.Get(ts.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if !strings.Contains(string(body), tt.want) {
			t.Errorf("GET %s = %s, want it to contain %s", tt.path, body, tt.want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.New()
	cfg.Metrics.Enabled = false
	ts := newTestServer(t, cfg)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	r, _ := post(t, ts.URL+"/v1/transform", "application/json", doc)
	if r.StatusCode != http.StatusOK {
		t.Errorf("transform status = %d, want 200", r.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		"E100": http.StatusBadRequest,
		"E103": http.StatusBadRequest,
		"E123": http.StatusBadRequest,
		"E124": http.StatusRequestEntityTooLarge,
		"E141": http.StatusInternalServerError,
		"E165": http.StatusUnprocessableEntity,
		"E180": http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := statusFor(code); got != want {
			t.Errorf("statusFor(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s := New(nil, WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		if resp, err = http.Get(url); err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
