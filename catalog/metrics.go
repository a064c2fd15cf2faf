package catalog

import "net/http"

// Metrics exposes the catalog cache counters in Prometheus format
//
//encore:api public raw method=GET path=/metrics
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	s.metrics.ServeHTTP(w, req)
}
