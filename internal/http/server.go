package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"budgetapp/internal/core"
	applog "budgetapp/internal/log"
	"budgetapp/internal/middleware/security"
	"budgetapp/internal/middleware/trace"
	appweb "budgetapp/web"
)

// BudgetService is what the HTTP layer needs from the service layer.
type BudgetService interface {
	CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error)
	ListBudgets(ctx context.Context) ([]core.Budget, error)
}

type Server struct {
	http.Server
	templates *template.Template
	service   BudgetService
	logger    *applog.Logger
}

// NewServer configures routes, middleware and templates, returning a
// ready-to-run server.
func NewServer(addr string, service BudgetService, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentHTTP)

	mux := http.NewServeMux()
	s := &Server{
		service: service,
		logger:  logger,
	}

	t, err := template.New("").Funcs(templateFuncs).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", applog.FieldError, err)
	}
	s.templates = t

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		logger.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	// JSON API
	mux.HandleFunc("GET /budgets", s.handleListBudgets)
	mux.HandleFunc("POST /budgets", s.handleCreateBudget)

	// Budget page
	mux.Handle("GET /{$}", headers.Middleware(http.HandlerFunc(s.handleIndex)))
	mux.Handle("POST /ui/budgets", headers.Middleware(http.HandlerFunc(s.handleCreateBudgetForm)))

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	tracer := trace.NewMiddleware(logger, security.NewClientIPResolver().ClientIP)
	handler := applog.Middleware(logger, trace.GetRequestID)(mux)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           tracer.Middleware(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
