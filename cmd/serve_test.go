package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	os.Exit(m.Run())
}

func do(t *testing.T, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	w := do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestIntervalGet(t *testing.T) {
	w := do(t, http.MethodGet, "/interval?low=c1&high=e1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.IntervalResponse](t, w)
	assert.Equal(t, model.IntervalResponse{
		Low:     "c1",
		High:    "e1",
		Number:  3,
		Degree:  3,
		Quality: "major",
		Label:   "major third",
	}, res)
}

func TestIntervalPostKeepsOrder(t *testing.T) {
	w := do(t, http.MethodPost, "/interval", `{"low":"g1","high":"c1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unknown", decode[model.IntervalResponse](t, w).Quality)

	w = do(t, http.MethodPost, "/interval", `{"low":"g1","high":"c1","auto":true}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.IntervalResponse](t, w)
	assert.Equal(t, "c1", res.Low)
	assert.Equal(t, "perfect fifth", res.Label)

	w = do(t, http.MethodGet, "/interval?low=g1&high=c1&order=auto", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "perfect fifth", decode[model.IntervalResponse](t, w).Label)
}

func TestIntervalLocale(t *testing.T) {
	w := do(t, http.MethodGet, "/interval?low=c1&high=me1&lang=zh", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "小三度", decode[model.IntervalResponse](t, w).Label)

	w = do(t, http.MethodGet, "/interval?low=c1&high=me1", "", http.Header{"Accept-Language": {"zh-CN,zh;q=0.9"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "小三度", decode[model.IntervalResponse](t, w).Label)

	w = do(t, http.MethodGet, "/interval?low=c1&high=me1&lang=!!", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntervalRejectsBadPitch(t *testing.T) {
	w := do(t, http.MethodGet, "/interval?low=H1&high=e1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[model.ErrorResponse](t, w).Error, "invalid pitch spec")

	w = do(t, http.MethodPost, "/interval", `{"low":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChord(t *testing.T) {
	w := do(t, http.MethodPost, "/chord", `{"notes":["b","d1","f1","g1"]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, model.ChordResponse{
		Notes:     []string{"b", "d1", "f1", "g1"},
		Quality:   "major-minor",
		Inversion: "first inversion",
		Figure:    "6/5",
		Root:      "g1",
		Label:     "major-minor seventh, first inversion",
	}, decode[model.ChordResponse](t, w))
}

func TestChordUnknown(t *testing.T) {
	w := do(t, http.MethodPost, "/chord", `{"notes":["c1","d1","e1"]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.ChordResponse](t, w)
	assert.Equal(t, "undefined", res.Label)
	assert.Equal(t, "", res.Root)
	assert.Equal(t, "", res.Figure)
}

func TestChordErrors(t *testing.T) {
	w := do(t, http.MethodPost, "/chord", `{"notes":["c1","e1"]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, http.MethodPost, "/chord", `{"notes":["c1","e1","q1"]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, http.MethodGet, "/chord", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestChordKeys(t *testing.T) {
	w := do(t, http.MethodPost, "/chord/keys?lang=zh", `{"keys":[63,67,70]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.ChordResponse](t, w)
	assert.Equal(t, []string{"me1", "g1", "mb1"}, res.Notes)
	assert.Equal(t, "me1", res.Root)
	assert.Equal(t, "大三和弦", res.Label)

	w = do(t, http.MethodPost, "/chord/keys", `{"keys":[60,64,300]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type brokenWriter struct {
	header http.Header
}

func (w *brokenWriter) Header() http.Header       { return w.header }
func (w *brokenWriter) WriteHeader(int)           {}
func (w *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteErrorLogsEncodeFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	logging.SetGlobalLogger(logging.NewLogger(&out, &errOut, 0))
	t.Cleanup(func() { logging.SetGlobalLogger(nil) })

	writeError(&brokenWriter{header: make(http.Header)}, http.StatusBadRequest, errors.New("bad input"))

	assert.Contains(t, errOut.String(), "[ERROR] could not encode error response: connection reset")
}
