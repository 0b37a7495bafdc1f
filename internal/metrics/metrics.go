package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wishlist"

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	wishlistsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlists_published_total",
		Help:      "Wishlist snapshots published through the admin API.",
	})
)

// ObserveRequest records one served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveRequest(method, path string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

func WishlistPublished() {
	wishlistsPublished.Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
