package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPasswordSuggester_Suggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("  x9!Kq#2m\n"))
	}))
	defer srv.Close()

	s := NewPasswordSuggester(srv.URL, time.Second, zap.NewNop())
	assert.Equal(t, "x9!Kq#2m", s.Suggest(context.Background()))
}

func TestPasswordSuggester_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewPasswordSuggester(srv.URL, time.Second, zap.NewNop())
	assert.Empty(t, s.Suggest(context.Background()))
}

func TestPasswordSuggester_Unreachable(t *testing.T) {
	s := NewPasswordSuggester("http://127.0.0.1:1/senha", 200*time.Millisecond, zap.NewNop())
	assert.Empty(t, s.Suggest(context.Background()))
}

func TestPasswordSuggester_Disabled(t *testing.T) {
	s := NewPasswordSuggester("", time.Second, zap.NewNop())
	assert.Empty(t, s.Suggest(context.Background()))
}
