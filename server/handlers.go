package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonwraymond/devops-info-service/health"
	"github.com/jonwraymond/devops-info-service/info"
	"github.com/jonwraymond/devops-info-service/observe"
)

// Handlers serves the declared routes.
type Handlers struct {
	collector *info.Collector
	probe     gin.HandlerFunc
	logger    observe.Logger
}

// Index serves the ServiceInfo document.
func (h *Handlers) Index(c *gin.Context) error {
	ctx := c.Request.Context()
	req := info.RequestFacts{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
	}

	observe.LoggerFromContext(ctx, h.logger).Info(ctx, "request served",
		observe.F("method", req.Method),
		observe.F("path", req.Path),
		observe.F("client_ip", req.ClientIP),
	)

	c.JSON(http.StatusOK, h.collector.Collect(ctx, req))
	return nil
}

// Health serves the liveness probe.
func (h *Handlers) Health(c *gin.Context) error {
	h.probe(c)
	return nil
}

func newHandlers(uptime *info.Uptime, logger observe.Logger) *Handlers {
	return &Handlers{
		probe:  gin.WrapF(health.LivenessHandler(health.NewLiveness(uptime), logger)),
		logger: logger,
	}
}
