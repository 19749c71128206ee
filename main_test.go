package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrabrand/Prompt101/internal/config"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "prompt101", cmd.Use)
	for _, name := range []string{"addr", "base-url", "log-level"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Empty(t, f.DefValue, name)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- serve(ctx, config.Config{Addr: "127.0.0.1:0"}, http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve did not return")
	}
}

func TestServe_BadAddr(t *testing.T) {
	err := serve(context.Background(), config.Config{Addr: "127.0.0.1:notaport"}, http.NotFoundHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen:")
}
