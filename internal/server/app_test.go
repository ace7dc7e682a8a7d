package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/safekey/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.DatabaseDriver = config.DriverSQLite
	c.DatabaseDSN = "file:" + t.Name() + "?mode=memory&cache=shared"
	c.S3BaseEndpoint = ""
	return c
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = orig })
	return &buf
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := testConfig(t)
	c.DatabaseDriver = "mysql"

	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "config error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	logs := captureLogs(t)

	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}

	assert.Contains(t, logs.String(), "Starting gRPC server")
	assert.Contains(t, logs.String(), "App stopped")
}

func TestApp_RunReportsListenError(t *testing.T) {
	captureLogs(t)

	c := testConfig(t)
	c.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
