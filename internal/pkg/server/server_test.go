package server

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_RunAndStop(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	s := NewGracefulServer(e, freePort(t), time.Second)

	var cleaned []string
	s.OnShutdown(func(context.Context) error {
		cleaned = append(cleaned, "redis")
		return errors.New("already closed")
	})
	s.OnShutdown(func(context.Context) error {
		cleaned = append(cleaned, "postgres")
		return nil
	})

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- s.Run(stop) }()

	time.Sleep(50 * time.Millisecond)
	stop <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"redis", "postgres"}, cleaned)
}

func TestGracefulServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	s := NewGracefulServer(e, port, time.Second)

	err = s.Run(make(chan os.Signal))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	s := NewGracefulServer(echo.New(), 8080, 0)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)
}
