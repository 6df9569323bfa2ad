package psgc_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/izaj/izaj-golang/internal/psgc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvincesReshapesUpstreamRecords(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/provinces/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Upstream records carry more fields than we forward.
		_, _ = w.Write([]byte(`[
			{"code":"012800000","name":"Ilocos Norte","regionCode":"010000000","islandGroupCode":"luzon"},
			{"code":"043400000","name":"Laguna","regionCode":"040000000","islandGroupCode":"luzon"}
		]`))
	}))
	defer upstream.Close()

	client := &psgc.Client{BaseURL: upstream.URL, HTTPClient: upstream.Client()}
	provinces, err := client.Provinces(t.Context())
	require.NoError(t, err)

	require.Len(t, provinces, 2)
	assert.Equal(t, psgc.Province{Code: "012800000", Name: "Ilocos Norte", RegionCode: "010000000"}, provinces[0])
	assert.Equal(t, "Laguna", provinces[1].Name)
}

func TestProvincesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := &psgc.Client{BaseURL: upstream.URL, HTTPClient: upstream.Client()}
	_, err := client.Provinces(t.Context())
	assert.Error(t, err)
}

func TestProvincesUnreachableUpstream(t *testing.T) {
	client := &psgc.Client{BaseURL: "http://127.0.0.1:0", HTTPClient: &http.Client{}}
	_, err := client.Provinces(t.Context())
	assert.Error(t, err)
}
