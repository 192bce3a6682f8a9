package internal

import (
	"net/http"
	"sdn/internal/controllers"
	"sdn/internal/providers"
)

// InitRoutes wires the keepalive server's routes. The root pattern is the
// catch-all liveness handler, so any GET path an external pinger chooses
// gets its plaintext 200.
func InitRoutes(livenessController *controllers.LivenessController, statusController *controllers.StatusController, healthController *controllers.HealthController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/", http.HandlerFunc(livenessController.Alive))
	routers.Get("/health", http.HandlerFunc(healthController.Health))
	routers.Get("/status", http.HandlerFunc(statusController.GetStatus))
	return routers
}
