package classy

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "classy_client",
			Name:      "requests_total",
			Help:      "API requests completed, by method and status code.",
		},
		[]string{"method", "code"},
	)

	transportFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "classy_client",
			Name:      "transport_failures_total",
			Help:      "Requests that failed before an HTTP status was received.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every outbound request. It sits beneath the
// API-key wrapper so it observes exactly what goes on the wire.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		transportFailuresTotal.WithLabelValues(req.Method).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
