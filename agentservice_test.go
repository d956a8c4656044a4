package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/imjamesonzeller/agent0-tray/agent"
)

type nopLauncher struct{ opened []string }

func (l *nopLauncher) Open(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func TestAgentServiceDelegatesToClient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	launcher := &nopLauncher{}
	svc := NewAgentService(agent.NewClient(srv.URL, agent.WithLauncher(launcher)), zap.NewNop())

	msg, err := svc.PauseService()
	require.NoError(t, err)
	assert.Equal(t, "Service paused", msg)

	msg, err = svc.ResumeService()
	require.NoError(t, err)
	assert.Equal(t, "Service resumed", msg)

	msg, err = svc.OpenDashboard()
	require.NoError(t, err)
	assert.Equal(t, "Dashboard opened", msg)

	assert.EqualValues(t, 2, hits.Load())
	assert.Equal(t, []string{srv.URL + "/monitor"}, launcher.opened)
	assert.Equal(t, srv.URL+"/monitor", svc.DashboardURL())
}

func TestAgentServiceReturnsAndLogsFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.ErrorLevel)
	svc := NewAgentService(agent.NewClient(base), zap.New(core))

	_, err := svc.ResumeService()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to resume service: ")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, err.Error(), logs.All()[0].Message)
	assert.Equal(t, "transport", logs.All()[0].ContextMap()["kind"])
}
