// Package testkit provides test helpers: an in-memory database with the full
// schema applied, and a JSON-scenario-driven REST API test runner.
//
// Each scenario describes:
//   - The HTTP request to fire (method, URL, inline body or body file, headers)
//   - Expected HTTP status code
//   - Expected response body, compared exactly or as a subset
//
// Scenario files live next to your *_test.go files:
//
//	testdata/
//	  supplier_flow.json        ← ordered array of scenarios
//	  create_supplier_req.json  ← request body referenced by requestFileName
//
// Example _test.go:
//
//	func TestSupplierFlow(t *testing.T) {
//	    handler := kernel.NewHTTPKernel(testkit.NewDB(t), cfg).Handler()
//	    testkit.RunSequence(t, handler, "testdata/supplier_flow.json")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Scenario describes a single REST API test case.
type Scenario struct {
	// Meta
	Name        string `json:"name"`
	Description string `json:"description"`

	// Request
	RequestMethod   string            `json:"requestMethod"`   // GET, POST, PUT, PATCH, DELETE
	RequestURL      string            `json:"requestUrl"`      // e.g. /supplier?id=1
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline JSON request body
	RequestFileName string            `json:"requestFileName"` // request body file, relative to the scenario file
	Headers         map[string]string `json:"headers"`

	// Response assertions
	ExpectedCode     int             `json:"expectedCode"`
	ResponseBody     json.RawMessage `json:"responseBody"`     // inline expected body
	ResponseFileName string          `json:"responseFileName"` // expected body file
	// Subset makes the body assertion check only the keys and array elements
	// present in the expected body.
	Subset bool `json:"subset"`

	// resolved at load time, not in JSON
	dir string
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}
	return &s, nil
}

// LoadScenarioArray reads an ordered array of scenarios from one JSON file.
func LoadScenarioArray(path string) ([]*Scenario, error) {
	abs, data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var scenarios []*Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("testkit: parse scenario array %q: %w", abs, err)
	}

	dir := filepath.Dir(abs)
	for i, s := range scenarios {
		s.dir = dir
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid scenario %d in %q: %w", i, abs, err)
		}
	}
	return scenarios, nil
}

func readFile(path string) (string, []byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}
	return abs, data, nil
}

// validate performs basic sanity checks on the loaded scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if len(s.RequestBody) > 0 && s.RequestFileName != "" {
		return fmt.Errorf("requestBody and requestFileName are mutually exclusive")
	}
	if len(s.ResponseBody) > 0 && s.ResponseFileName != "" {
		return fmt.Errorf("responseBody and responseFileName are mutually exclusive")
	}
	s.RequestMethod = strings.ToUpper(s.RequestMethod)
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// Request returns the request body bytes, or nil when the scenario has none.
func (s *Scenario) Request() ([]byte, error) {
	if len(s.RequestBody) > 0 {
		return s.RequestBody, nil
	}
	if s.RequestFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.RequestFileName))
}

// ExpectedBody returns the expected response bytes, or nil when the body is
// not asserted.
func (s *Scenario) ExpectedBody() ([]byte, error) {
	if len(s.ResponseBody) > 0 {
		return s.ResponseBody, nil
	}
	if s.ResponseFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.ResponseFileName))
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
