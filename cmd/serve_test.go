package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/demolink/internal/config"
	"github.com/ziadkadry99/demolink/internal/hostaddr"
	"github.com/ziadkadry99/demolink/internal/server"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewServerServesDemoRoutes(t *testing.T) {
	cfg := config.DefaultConfig()
	srv := newServer(cfg, hostaddr.Static{Host: cfg.Host}, quietLogger())

	tests := []struct {
		path string
		want string
	}{
		{"/", `{"data":["http://localhost:8080/test"],"message":"Link to /test"}`},
		{"/test", `{"data":{"name":"aflah","password":"123456","email":"aflah@universe.com"},"message":"success"}`},
		{"/healthz", `{"status":"ok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(server.RequestIDHeader))
		})
	}
}

func TestNewServerLinkFollowsPort(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Port = 9999
	srv := newServer(cfg, hostaddr.Static{}, quietLogger())

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"data":["http://localhost:9999/test"],"message":"Link to /test"}`, w.Body.String())
}

func TestLoadServeConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demolink.yml")
	require.NoError(t, config.DefaultConfig().Save(path))

	oldCfgFile := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = oldCfgFile })

	require.NoError(t, serveCmd.Flags().Set("port", "7001"))
	require.NoError(t, serveCmd.Flags().Set("host-mode", "resolve"))
	t.Cleanup(func() {
		serveCmd.Flags().Set("port", "8080")
		serveCmd.Flags().Set("host-mode", "static")
		serveCmd.Flags().Lookup("port").Changed = false
		serveCmd.Flags().Lookup("host-mode").Changed = false
	})

	cfg, err := loadServeConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, hostaddr.ModeResolve, cfg.HostMode)
}

func TestLoadServeConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demolink.yml")
	require.NoError(t, os.WriteFile(path, []byte("host_mode: dns\n"), 0644))

	oldCfgFile := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = oldCfgFile })

	_, err := loadServeConfig(serveCmd)
	assert.Error(t, err)
}

func TestInitDefaultsWritesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demolink.yml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--defaults", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = config.DefaultPath
		initDefaults = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Configuration saved to")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, *config.DefaultConfig(), *cfg)

	// A second run without --force refuses to overwrite.
	rootCmd.SetArgs([]string{"init", "--defaults", "--config", path})
	assert.Error(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "demolink dev\n", out.String())
}
