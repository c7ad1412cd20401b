package testkit_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/warehouse/pkg/testkit"
)

// counterHandler keeps a counter so sequences can observe earlier steps.
func counterHandler() http.Handler {
	var (
		mu sync.Mutex
		n  int
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/counter" && r.Method == http.MethodPost:
			var body struct {
				By int `json:"by"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"bad json"}`))
				return
			}
			n += body.By
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "value": n})
		case r.URL.Path == "/counter":
			_ = json.NewEncoder(w).Encode(map[string]any{"value": n, "items": []map[string]any{{"id": 1, "tag": "x"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	})
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRunSequence_SharesState(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "incr.json", `{"by": 2}`)
	path := write(t, dir, "flow.json", `[
		{"name": "increment", "requestMethod": "post", "requestUrl": "/counter", "requestFileName": "incr.json", "expectedCode": 201, "responseBody": {"ok": true, "value": 2}},
		{"name": "increment again", "requestMethod": "POST", "requestUrl": "/counter", "requestBody": {"by": 3}, "expectedCode": 201},
		{"name": "read", "requestUrl": "/counter", "expectedCode": 200, "subset": true, "responseBody": {"value": 5, "items": [{"tag": "x"}]}}
	]`)

	testkit.RunSequence(t, counterHandler(), path)
}

func TestRun_SingleScenario(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "missing_res.json", `{"error": "not found"}`)
	path := write(t, dir, "missing.json", `{"name": "missing route", "requestUrl": "/nope", "expectedCode": 404, "responseFileName": "missing_res.json"}`)

	testkit.Run(t, counterHandler(), path)
}

func TestLoadScenario_Validation(t *testing.T) {
	dir := t.TempDir()

	_, err := testkit.LoadScenario(write(t, dir, "no_name.json", `{"requestUrl": "/x", "expectedCode": 200}`))
	assert.Error(t, err)

	_, err = testkit.LoadScenario(write(t, dir, "no_code.json", `{"name": "x", "requestUrl": "/x"}`))
	assert.Error(t, err)

	_, err = testkit.LoadScenario(write(t, dir, "both.json", `{"name": "x", "requestUrl": "/x", "expectedCode": 200, "requestBody": {}, "requestFileName": "a.json"}`))
	assert.Error(t, err)

	s, err := testkit.LoadScenario(write(t, dir, "ok.json", `{"name": "x", "requestUrl": "/x", "expectedCode": 200}`))
	require.NoError(t, err)
	assert.Equal(t, "GET", s.RequestMethod)
}

func TestDiffJSON(t *testing.T) {
	var exp, act interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": [1, 2]}`), &exp))
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": [1, 3], "c": true}`), &act))

	diffs := testkit.DiffJSON("", exp, act)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0], "b[1]")
}

func TestNewDB_AppliesSchema(t *testing.T) {
	db := testkit.NewDB(t)

	for _, table := range []string{"products", "suppliers", "storages", "products_and_suppliers", "products_and_storages"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("suppliers", "uq_suppliers_phone"))
	assert.True(t, db.Migrator().HasIndex("storages", "uq_storages_address"))
	assert.True(t, db.Migrator().HasIndex("suppliers", "uq_suppliers_email"))
	assert.True(t, db.Migrator().HasIndex("products", "uq_products_description"))
}
