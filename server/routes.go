package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonwraymond/devops-info-service/info"
)

// HandlerFunc handles one routed request. A returned error is turned into
// the 500 response by the fault boundary.
type HandlerFunc func(c *gin.Context) error

// Route is one entry of the route table.
type Route struct {
	Method      string
	Path        string
	Description string
	Handler     HandlerFunc
}

// DefaultRoutes returns the service's route table bound to h.
func DefaultRoutes(h *Handlers) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Description: "Service information", Handler: h.Index},
		{Method: http.MethodGet, Path: "/health", Description: "Health check", Handler: h.Health},
	}
}

// Endpoints lists routes in table order as reported by GET /.
func Endpoints(routes []Route) []info.Endpoint {
	out := make([]info.Endpoint, 0, len(routes))
	for _, r := range routes {
		out = append(out, info.Endpoint{
			Path:        r.Path,
			Method:      r.Method,
			Description: r.Description,
		})
	}
	return out
}

// allowedMethods maps each declared path to its methods, in table order.
func allowedMethods(routes []Route) map[string][]string {
	out := make(map[string][]string, len(routes))
	for _, r := range routes {
		out[r.Path] = append(out[r.Path], r.Method)
	}
	return out
}

// bind adapts a HandlerFunc to gin, recording its error on the context.
func bind(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
		}
	}
}
