package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"talentboard/internal/http/handlers"
	"talentboard/internal/http/metrics"
	httpmw "talentboard/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler      *handlers.AuthHandler
	BoardHandler     *handlers.BoardHandler
	DashboardHandler *handlers.DashboardHandler
	MetricsHandler   *handlers.MetricsHandler
	AuthMiddleware   *httpmw.AuthMiddleware
	Metrics          *metrics.Collector
	Logger           zerolog.Logger
	RequestTimeout   time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging(r.deps.Logger), httpmw.BodyLimit(maxBodyBytes), httpmw.Recover(r.deps.Logger), httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		}

		if path == "/auth/me" || path == "/auth/logout" || strings.HasPrefix(path, "/dashboard") || strings.HasPrefix(path, "/projects/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/auth/me":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodPost && path == "/auth/logout":
		r.deps.AuthHandler.Logout(w, req)
		return
	case req.Method == http.MethodGet && path == "/dashboard/stats":
		r.deps.DashboardHandler.Stats(w, req)
		return
	}

	if strings.HasPrefix(path, "/projects/") {
		r.handleBoard(w, req)
		return
	}

	http.NotFound(w, req)
}

// handleBoard dispatches /projects/{id}/board and its subresources.
func (r *Router) handleBoard(w http.ResponseWriter, req *http.Request) {
	segments := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
	if len(segments) < 3 || segments[0] != "projects" || segments[2] != "board" {
		http.NotFound(w, req)
		return
	}
	projectID, err := strconv.Atoi(segments[1])
	if err != nil || projectID <= 0 {
		http.NotFound(w, req)
		return
	}

	switch {
	case len(segments) == 3 && req.Method == http.MethodPost:
		r.deps.BoardHandler.Open(w, req, projectID)
		return
	case len(segments) == 3 && req.Method == http.MethodGet:
		r.deps.BoardHandler.Get(w, req, projectID)
		return
	case len(segments) == 3 && req.Method == http.MethodDelete:
		r.deps.BoardHandler.Close(w, req, projectID)
		return
	case len(segments) == 4 && segments[3] == "move" && req.Method == http.MethodPost:
		r.deps.BoardHandler.Move(w, req, projectID)
		return
	case len(segments) == 4 && segments[3] == "nominees" && req.Method == http.MethodPost:
		r.deps.BoardHandler.Nominate(w, req, projectID)
		return
	case len(segments) == 5 && segments[3] == "nominees" && req.Method == http.MethodDelete:
		nomineeID, err := strconv.Atoi(segments[4])
		if err != nil || nomineeID <= 0 {
			http.NotFound(w, req)
			return
		}
		r.deps.BoardHandler.Remove(w, req, projectID, nomineeID)
		return
	}

	http.NotFound(w, req)
}
