package paceapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSendsSchedule(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody PushRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123")
	err := c.Push(context.Background(), PushRequest{
		GroupID:     "sandbox-group-1",
		GeneratedAt: time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC),
		Modules: []ModulePace{
			{ModuleID: "sandbox-module-1", DayOffsets: []int{9, 8, 7}},
			{ModuleID: "sandbox-module-2", DayOffsets: []int{4, 3}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/groups/sandbox-group-1/pace", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, gotBody.Modules, 2)
	assert.Equal(t, []int{9, 8, 7}, gotBody.Modules[0].DayOffsets)
}

func TestPushSurfacesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "group is archived", http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	err := c.Push(context.Background(), PushRequest{GroupID: "g1"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Equal(t, "group is archived", statusErr.Body)
}

func TestResetDeletes(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "")
	require.NoError(t, c.Reset(context.Background(), "sandbox-group-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/groups/sandbox-group-1/pace", gotPath)
}

func TestResetTreats404AsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	assert.NoError(t, c.Reset(context.Background(), "missing-group"))
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	require.NoError(t, c.Reset(context.Background(), "g1"))
	assert.Empty(t, gotAuth)
}
