package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jonwraymond/devops-info-service/info"
	"github.com/jonwraymond/devops-info-service/observe"
)

// Deps are the collaborators injected into the router.
type Deps struct {
	// Uptime is measured from the process start time. Required.
	Uptime *info.Uptime

	// System defaults to info.NewSystemCollector().
	System info.SystemSource

	// Middleware defaults to one without tracing or metrics that hands
	// handlers Logger.
	Middleware *observe.Middleware

	// Logger is the fallback log sink. Defaults to Middleware's logger, or
	// a no-op. Handlers prefer the request logger Middleware places in the
	// request context.
	Logger observe.Logger
}

func (d Deps) withDefaults() (Deps, error) {
	if d.Uptime == nil {
		return d, ErrMissingUptime
	}
	if d.Logger == nil && d.Middleware != nil {
		d.Logger = d.Middleware.Logger()
	}
	if d.Logger == nil {
		d.Logger = observe.NopLogger()
	}
	if d.Middleware == nil {
		d.Middleware = observe.NewMiddleware(nil, nil, d.Logger)
	}
	return d, nil
}

// NewRouter builds the gin engine serving DefaultRoutes followed by extra.
//
// gin's mode is process-wide and is left to the caller (see Config.GinMode).
func NewRouter(deps Deps, extra ...Route) (*gin.Engine, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}

	h := newHandlers(deps.Uptime, deps.Logger)
	routes := append(DefaultRoutes(h), extra...)
	h.collector = info.NewCollector(info.CollectorConfig{
		Uptime:    deps.Uptime,
		System:    deps.System,
		Endpoints: Endpoints(routes),
	})

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	// Client addresses are taken from the connection, never from headers.
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	engine.Use(instrument(deps.Middleware), recoverFaults(deps.Logger))

	for _, r := range routes {
		engine.Handle(r.Method, r.Path, bind(r.Handler))
	}

	allowed := allowedMethods(routes)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, notFoundResponse)
	})
	engine.NoMethod(func(c *gin.Context) {
		if methods := allowed[c.Request.URL.Path]; len(methods) > 0 {
			c.Header("Allow", strings.Join(methods, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, methodNotAllowedResponse)
	})

	return engine, nil
}
