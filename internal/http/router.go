package http

import (
	"net/http"
)

// SetupRouter creates and configures HTTP router
func SetupRouter(server *Server) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.Handle("/health", chainMiddleware(server.Health, CORSMiddleware, methodMiddleware("GET")))

	// Clip creation. CORS sits outermost so OPTIONS preflight never hits
	// the method check.
	clipChain := chainMiddleware(server.CreateClip,
		CORSMiddleware,
		RequestIDMiddleware,
		LoggingMiddleware,
		ContentTypeMiddleware,
		methodMiddleware("POST"),
	)
	mux.Handle("/api/v1/clip", clipChain)
	// Legacy path used by the API Gateway integration.
	mux.Handle("/clip", clipChain)

	return mux
}

// chainMiddleware applies multiple middleware to a handler function
func chainMiddleware(handler http.HandlerFunc, middleware ...func(http.Handler) http.Handler) http.HandlerFunc {
	h := http.Handler(handler)
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// methodMiddleware creates middleware that checks for specific HTTP method
func methodMiddleware(method string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
