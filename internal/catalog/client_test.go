package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return catalog.NewClient(srv.URL, "test-token", 5*time.Second, log)
}

func TestListVariationTypes_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/variations/company/company-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": "vt-1", "name": "Tamanho", "values": []string{"P", "M", "G"}},
			},
			"total": 1,
		})
	})

	types, total, err := client.ListVariationTypes(context.Background(), "company-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, types, 1)
	assert.Equal(t, []string{"P", "M", "G"}, types[0].Values)
}

func TestListVariationTypes_MissingTotalReportsMinusOne(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{},
		})
	})

	_, total, err := client.ListVariationTypes(context.Background(), "company-1")

	assert.NoError(t, err)
	assert.Equal(t, -1, total)
}

// Every mutation carries a cache-defeating timestamp parameter plus
// no-cache headers; plain GETs carry neither.
func TestMutationsDefeatIntermediateCaches(t *testing.T) {
	var gets, posts int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets++
			assert.Empty(t, r.URL.Query().Get("_ts"))
			assert.Empty(t, r.Header.Get("Cache-Control"))
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		default:
			posts++
			assert.NotEmpty(t, r.URL.Query().Get("_ts"))
			assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
			assert.Equal(t, "no-cache", r.Header.Get("Pragma"))
			json.NewEncoder(w).Encode(map[string]interface{}{"id": "vt-1"})
		}
	})

	_, _, err := client.ListVariationTypes(context.Background(), "company-1")
	assert.NoError(t, err)

	_, err = client.CreateVariationType(context.Background(), catalog.CreateVariationTypeRequest{
		CompanyID: "company-1", Name: "Tamanho", Values: []string{"P"},
	})
	assert.NoError(t, err)

	assert.Equal(t, 1, gets)
	assert.Equal(t, 1, posts)
}

func TestGetProduct_AcceptsBareAndWrappedObjects(t *testing.T) {
	bare := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "prod-1", "name": "Camiseta", "variation": "vt-size",
		})
	})
	product, err := bare.GetProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "vt-size", product.Variation.TypeID())

	wrapped := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id": "prod-1", "name": "Camiseta",
				"variation": map[string]interface{}{"id": "vt-size", "name": "Tamanho"},
			},
		})
	})
	product, err = wrapped.GetProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "vt-size", product.Variation.TypeID())
}

func TestDo_NotFoundMapsToNotFoundError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProduct(context.Background(), "prod-missing")

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDo_ServerErrorMapsToNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.DeleteVariationType(context.Background(), "vt-1")

	var netErr *apperrors.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestDo_ClientErrorIsPlainError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"name taken"}`))
	})

	_, err := client.CreateVariationType(context.Background(), catalog.CreateVariationTypeRequest{
		CompanyID: "company-1", Name: "Tamanho",
	})

	assert.Error(t, err)
	_, isApp := apperrors.As(err)
	assert.False(t, isApp)
	assert.Contains(t, err.Error(), "name taken")
}
