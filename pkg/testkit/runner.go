package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// ─── Public API ───────────────────────────────────────────────────────────────

// Run executes a single scenario file against handler.
func Run(t *testing.T, handler http.Handler, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("%v", err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, handler, s)
	})
}

// RunDir discovers every *.json file in dir and runs each as a t.Run subtest.
// Files that fail to parse are reported as test failures, not fatal.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("%v", err)
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, handler, s)
		})
	}
}

// RunSequence runs an ordered array of scenarios against one handler. State
// carries over between steps, so later steps can observe earlier writes.
// The sequence stops at the first failing step.
func RunSequence(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	scenarios, err := LoadScenarioArray(path)
	if err != nil {
		t.Fatalf("%v", err)
	}

	for _, s := range scenarios {
		if !t.Run(s.Name, func(t *testing.T) { runScenario(t, handler, s) }) {
			t.Fatalf("testkit: step %q failed, stopping sequence", s.Name)
		}
	}
}

// Do fires one request and returns the recorder. body may be nil.
func Do(handler http.Handler, method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// ─── Internal execution ───────────────────────────────────────────────────────

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	body, err := s.Request()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}

	rec := Do(handler, s.RequestMethod, s.RequestURL, body, s.Headers)

	AssertStatusCode(t, s, rec.Code, rec.Body.Bytes())

	expected, err := s.ExpectedBody()
	if err != nil {
		t.Fatalf("[%s] read expected body: %v", s.Name, err)
	}
	if expected == nil {
		return
	}
	if s.Subset {
		AssertJSONSubset(t, s, expected, rec.Body.Bytes())
	} else {
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	}
}
