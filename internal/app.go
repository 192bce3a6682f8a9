package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sdn/internal/providers"
	"sdn/internal/structures"
	"sdn/internal/watcher"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
}

// NewApp boots the daemon and blocks until a shutdown signal arrives or
// the keepalive server dies. The supervisor drains its current tick
// before the function returns.
func NewApp(supervisor watcher.SupervisorInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	if err := supervisor.Restore(); err != nil {
		logger.Warnf(providers.TypeApp, "Restore error, starting with no prior state: %s", err)
	}
	supervisor.Announce()
	supervisor.Start()

	app := &App{}
	serverErr := make(chan error, 1)

	if conf.Keepalive.Enabled {
		apiMux := http.NewServeMux()
		for _, route := range router.GetRoutes() {
			apiMux.Handle(route.Url, route.Handler)
		}
		instrumented := providers.MetricsMiddleware(metrics, apiMux)

		mux := http.NewServeMux()
		if conf.Metrics.Enabled {
			mux.Handle("/metrics", promhttp.Handler())
		}
		mux.Handle("/", instrumented)

		addr := conf.Keepalive.Host + ":" + strconv.Itoa(conf.Keepalive.Port)
		app.WebServer = &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			logger.Infof(providers.TypeApp, "Keepalive server listening on %s", addr)
			if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErr <- err
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		supervisor.Stop()
		return nil, fmt.Errorf("keepalive server error: %w", err)
	}

	supervisor.Stop()

	if app.WebServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.WebServer.Shutdown(ctx); err != nil {
			return nil, err
		}
	}

	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
