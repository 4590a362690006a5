package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/GoSim-25-26J-441/project-verification/internal/api/http/middleware"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	buf := captureLog(t)
	ctx := middleware.WithRequestID(context.Background(), "req-1")

	l := NewLogger(ctx, LevelWarn)
	l.LogInfof("register", "project_id=%s", "p1")
	l.LogWarnf("register", "project_id=%s", "p2")
	l.LogError("register", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "project_id=p1")
	assert.Contains(t, out, "[warn] request_id=req-1 operation=register project_id=p2")
	assert.Contains(t, out, "[error] request_id=req-1 operation=register error=boom")
}

func TestVerificationService_SetLogLevel(t *testing.T) {
	buf := captureLog(t)
	svc := newTestService()
	svc.SetLogLevel("error")

	_, err := svc.Register(context.Background(), "p1", "alice")
	assert.NoError(t, err)
	_, err = svc.Register(context.Background(), "p1", "alice")
	assert.Error(t, err)

	assert.Empty(t, buf.String())

	svc.SetLogLevel("info")
	_, err = svc.Register(context.Background(), "p2", "alice")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[info] request_id=unknown operation=register project_id=p2")
}
