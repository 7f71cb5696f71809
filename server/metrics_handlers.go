package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"masto_bridge/shared"
	"net/http"
)

// Prometheus scrape endpoint, guarded by a bearer secret.
type metricsHandlerGroup struct {
	secret  string
	logger  shared.ILogger
	scraper http.Handler
}

func NewMetricsHandlerGroup(cfg *shared.Config, logger shared.ILogger) IHandlerGroup {
	scraper := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorHandling:     promhttp.ContinueOnError,
		EnableOpenMetrics: true,
	})
	return &metricsHandlerGroup{
		secret:  cfg.Secrets.MetricsAuth,
		logger:  logger,
		scraper: promhttp.InstrumentMetricHandler(prometheus.DefaultRegisterer, scraper),
	}
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{http.MethodGet, "/metrics", hg.scraper.ServeHTTP},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secretMatches(bearerToken(r), hg.secret) {
				hg.logger.Warnf("Rejected metrics scrape from %s", r.RemoteAddr)
				writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
