package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-insight/internal/dto"
	"stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFLImageRepository_SubmitAndGetResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/flux-pro-1.1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "bfl-key", r.Header.Get("x-key"))

		var param dto.ImageGenerationParam
		require.NoError(t, json.NewDecoder(r.Body).Decode(&param))
		assert.Equal(t, "AAPL logo", param.Prompt)
		assert.Equal(t, 896, param.Width)
		assert.Equal(t, 1152, param.Height)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"job-1"}`))
	})
	mux.HandleFunc("/v1/get_result", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "job-1", r.URL.Query().Get("id"))
		assert.Equal(t, "bfl-key", r.Header.Get("x-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"job-1","status":"Ready","result":{"sample":"https://cdn/img.jpg"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := NewImageRepository(testConfig(srv.URL), logger.NewNop())

	submitted, err := repo.Submit(context.Background(), dto.ImageGenerationParam{Prompt: "AAPL logo", Width: 896, Height: 1152})
	require.NoError(t, err)
	assert.Equal(t, "job-1", submitted.ID)

	result, err := repo.GetResult(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ImageStatusReady, result.Status)
	assert.Equal(t, "https://cdn/img.jpg", result.Sample())
}

func TestBFLImageRepository_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))
	defer srv.Close()

	repo := NewImageRepository(testConfig(srv.URL), logger.NewNop())

	_, err := repo.Submit(context.Background(), dto.ImageGenerationParam{Prompt: "x"})
	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusForbidden, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "Not authenticated")
}
