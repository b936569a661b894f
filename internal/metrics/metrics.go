package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classpulse", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "status"})
	PointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classpulse", Name: "points_awarded_total", Help: "Engagement point records created",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classpulse", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, PointsAwarded, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
