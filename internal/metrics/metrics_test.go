package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWishlistPublished(t *testing.T) {
	before := testutil.ToFloat64(wishlistsPublished)
	WishlistPublished()
	assert.Equal(t, before+1, testutil.ToFloat64(wishlistsPublished))
}

func TestHandlerExposesRequests(t *testing.T) {
	ObserveRequest(http.MethodGet, "/products/newest", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wishlist_http_request_duration_seconds_count{method="GET",path="/products/newest",status="200"}`)
}
