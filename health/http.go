package health

import (
	"encoding/json"
	"net/http"

	"github.com/jonwraymond/devops-info-service/observe"
)

// LivenessHandler returns an HTTP handler for the liveness probe.
//
// Each request writes one log line through the request-scoped logger carried
// by the request context, falling back to logger: debug when healthy, warn
// with the check error otherwise. A nil logger discards the entry.
func LivenessHandler(l *Liveness, logger observe.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		result := l.Check(ctx)

		fields := []observe.Field{
			observe.F("status", result.Status.String()),
			observe.F("message", result.Message),
			observe.F("duration", result.Duration),
		}
		log := observe.LoggerFromContext(ctx, logger)
		if result.Error != nil {
			log.Warn(ctx, "health check failed", append(fields, observe.F("error", result.Error))...)
		} else {
			log.Debug(ctx, "health check requested", fields...)
		}

		response := l.Response(result)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.HTTPStatus())
		_ = json.NewEncoder(w).Encode(response)
	}
}
