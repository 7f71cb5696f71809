package server

import (
	"context"
	"errors"
	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"masto_bridge/shared"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const readHeaderTimeout = 10 * time.Second

func NewHTTPServer(cfg *shared.Config, logger shared.ILogger, lc fx.Lifecycle, router *mux.Router) *http.Server {
	srv := &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(cfg.ServicePort), 10),
		Handler:           trimSlashMW(router),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Infof("Listening for chat gateway and operator requests at %v", srv.Addr)
			go func() {
				if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorf("HTTP server stopped: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Infof("Shutting down HTTP server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

// NewMux mounts every handler group under its prefix. Unmatched requests get JSON errors.
func NewMux(groups []IHandlerGroup, logger shared.ILogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(noCacheMW)
	router.NotFoundHandler = jsonErrorHandler(logger, notFoundStr, http.StatusNotFound)
	router.MethodNotAllowedHandler = jsonErrorHandler(logger, badMethodStr, http.StatusMethodNotAllowed)
	for _, group := range groups {
		sub := router.PathPrefix(group.Prefix()).Subrouter()
		sub.Use(group.AuthMW())
		for _, def := range group.GroupDefs() {
			sub.HandleFunc(def.pattern, def.handler).Methods(def.method)
		}
	}
	return router
}

func jsonErrorHandler(logger shared.ILogger, msg string, code int) http.Handler {
	return noCacheMW(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debugf("%s %s: %d", r.Method, r.URL.Path, code)
		writeErrorResponse(w, msg, code)
	}))
}

// Runs before routing; the gateway and scrapers are not consistent about trailing slashes.
func trimSlashMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 {
			r.URL.Path = strings.TrimRight(r.URL.Path, "/")
		}
		next.ServeHTTP(w, r)
	})
}

func noCacheMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
