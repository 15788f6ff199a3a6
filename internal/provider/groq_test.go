package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "emojiexplainer/internal/errors"
)

func TestClient_Explain(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError error
		wantMeaning   string
	}{
		{
			name: "successful lookup",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/emoji", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"meaning":"grinning face"}`))
			},
			wantMeaning: "grinning face",
		},
		{
			name: "missing meaning field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"unexpected":"payload"}`))
			},
			expectedError: apperrors.ErrInvalidResponse,
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			expectedError: apperrors.ErrInvalidResponse,
		},
		{
			name: "provider error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedError: apperrors.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "", 2*time.Second)
			meaning, err := client.Explain(context.Background(), "😀")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, meaning)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMeaning, meaning)
			}
		})
	}
}

func TestClient_Explain_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Explain(context.Background(), "😀")

	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}

func TestClient_Explain_SendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"meaning":"fire"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", time.Second)
	meaning, err := client.Explain(context.Background(), "🔥")

	assert.NoError(t, err)
	assert.Equal(t, "fire", meaning)
}

func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	code, err := client.Status(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestClient_Status_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Status(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}
