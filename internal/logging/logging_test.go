package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	l, err := New(io.Discard, "warn", "text", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l, err = New(io.Discard, "warn", "text", true)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l, err = New(io.Discard, "", "", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(io.Discard, "loud", "text", false)
	assert.Error(t, err)

	_, err = New(io.Discard, "info", "xml", false)
	assert.Error(t, err)
}

func TestRequestsMiddleware(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json", false)
	require.NoError(t, err)

	h := Requests(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hi"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request served", line["msg"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/test", line["path"])
	assert.EqualValues(t, http.StatusCreated, line["status"])
	assert.EqualValues(t, 2, line["bytes"])
}
