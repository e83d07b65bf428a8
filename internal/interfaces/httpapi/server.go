package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sunday-dashboard/internal/platform/id"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

// RouterOptions tunes the middleware chain around the API routes.
type RouterOptions struct {
	CORSAllowedOrigins  []string
	CaptureRequestBody  bool
	RequestBodyMaxBytes int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	var inner http.Handler = recoverPanic(logger, newMux(handler))
	if opts.CaptureRequestBody {
		inner = CaptureRequestBody(opts.RequestBodyMaxBytes, inner)
	}

	return RequestTracing(
		RequestID(id.NewUUIDGenerator(), logger,
			RequestLogging(logger,
				CORS(opts.CORSAllowedOrigins, inner))))
}

func newMux(handler *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerDashboardRoutes(mux, handler)
	return mux
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
