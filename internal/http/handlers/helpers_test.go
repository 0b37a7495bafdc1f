package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	mu  sync.Mutex
	put []string
}

func (f *fakeImages) SignGetURL(_ context.Context, key string) (string, error) {
	return "https://img.test/" + key, nil
}

func (f *fakeImages) ProductImageKey(productID, uploadID, filename string) string {
	return "products/" + productID + "/" + uploadID + "_" + filename
}

func (f *fakeImages) SignPutURL(_ context.Context, key, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put = append(f.put, key)
	return "https://upload.test/" + key, nil
}

func (f *fakeImages) Expiry() time.Duration { return 15 * time.Minute }

type published struct {
	topic string
	event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
}

func (f *fakePublisher) Publish(topic string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, published{topic: topic, event: v})
	return nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func names(products []map[string]any) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p["name"].(string))
	}
	return out
}
