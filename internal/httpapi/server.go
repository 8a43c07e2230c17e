package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/curriculum"
	"github.com/sagelearn/sage/internal/store"
	"github.com/sagelearn/sage/internal/tutor"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Users      store.UserRepo
	Paths      store.PathRepo
	Turns      store.TurnRepo
	Snapshots  store.SnapshotRepo
	Portfolio  store.PortfolioRepo
	Tutor      *tutor.Service
	Curriculum *curriculum.Service
	Logger     *zap.Logger
}

// Server is the REST API over the tutoring backend.
type Server struct {
	router *mux.Router
	logger *zap.Logger
}

func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &Server{
		router: mux.NewRouter(),
		logger: deps.Logger,
	}

	s.router.Use(corsMiddleware)
	s.router.Use(loggingMiddleware(deps.Logger))

	api := s.router.PathPrefix("/api").Subrouter()

	(&userHandler{users: deps.Users}).register(api)
	(&pathHandler{paths: deps.Paths, curriculum: deps.Curriculum, logger: deps.Logger}).register(api)
	(&chatHandler{tutor: deps.Tutor, turns: deps.Turns, snapshots: deps.Snapshots, paths: deps.Paths}).register(api)
	(&portfolioHandler{portfolio: deps.Portfolio}).register(api)

	s.router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
