package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/vocab-builder/internal/http"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

func newTestApp(port int, out io.Writer) *App {
	gin.SetMode(gin.TestMode)
	cfg := defaultConfig()
	cfg.HTTP.Port = port
	cfg.HTTP.ShutdownTimeout = 2 * time.Second
	return &App{
		Log:    logger.Nop(),
		Cfg:    cfg,
		Router: http.NewRouter(http.RouterConfig{Log: logger.Nop()}),
		Stdout: out,
	}
}

func TestServeAnswersUnmatchedWith404(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(0, &out)

	ln, err := a.Listen()
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	assert.Equal(t, fmt.Sprintf("Server started on port %d\n", port), out.String())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	resp, err := nethttp.Get(fmt.Sprintf("http://127.0.0.1:%d/nonexistent?x=1", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"url":"/nonexistent?x=1 not found"}`, strings.TrimSpace(string(body)))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve did not return after cancel")
	}
}

func TestListenFailsWhenPortTaken(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	var out bytes.Buffer
	a := newTestApp(busy.Addr().(*net.TCPAddr).Port, &out)
	_, err = a.Listen()
	assert.Error(t, err)
	assert.Empty(t, out.String(), "no startup line when bind fails")
}

func TestListenRequiresRouter(t *testing.T) {
	a := &App{}
	_, err := a.Listen()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, isProduction("prod"))
	assert.True(t, isProduction(" Production "))
	assert.False(t, isProduction("development"))
	assert.False(t, isProduction(""))
}
