package router

import (
	"net/http"

	"github.com/dtroode/taskflow/internal/api/http/handler"
	"github.com/dtroode/taskflow/internal/api/http/middleware"
	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

// Auth builds the auth service's HTTP handler tree.
type Auth struct {
	authService handler.AuthService
	logger      *logger.Logger
}

// NewAuth creates a new auth service router.
func NewAuth(authService handler.AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register wires all auth routes and middleware and returns the root
// handler.
func (r *Auth) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /auth/validate", authHandler.Validate)

	logging := middleware.NewLogging(r.logger)

	return logging.Handle(mux)
}

// Tasks builds the task service's HTTP handler tree.
type Tasks struct {
	taskService    handler.TaskService
	validator      model.Validator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTasks creates a new task service router.
func NewTasks(
	taskService handler.TaskService,
	validator model.Validator,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Tasks {
	return &Tasks{
		taskService:    taskService,
		validator:      validator,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires all task routes and middleware and returns the root
// handler. Every /tasks route sits behind the authentication
// middleware; /health does not.
func (r *Tasks) Register() http.Handler {
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.validator, r.contextManager, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.Handle("POST /tasks", authenticate.Handle(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /tasks", authenticate.Handle(http.HandlerFunc(taskHandler.List)))
	mux.Handle("PATCH /tasks/{id}/status", authenticate.Handle(http.HandlerFunc(taskHandler.UpdateStatus)))

	logging := middleware.NewLogging(r.logger)

	return logging.Handle(mux)
}
