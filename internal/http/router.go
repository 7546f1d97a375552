package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avoronova/go-fintrack/internal/http/handlers"
	"github.com/avoronova/go-fintrack/internal/http/middleware"
	"github.com/avoronova/go-fintrack/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчик и гистограмма запросов для /metrics
		middleware.AuthBearer(),         // вынимаем Bearer токен в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Всё, кроме register/login/refresh, закрыто RequireAuth.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth: открытые маршруты. Refresh принимает refresh-токен
	// в Authorization и проверяет его сам, без RequireAuth.
	r.Post("/auth/register", h.RegisterUser)
	r.Post("/auth/login", h.LoginUser)
	r.Post("/auth/refresh", h.RefreshToken)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(svc))

		// profile
		r.Get("/auth/profile", h.Profile)
		r.Put("/auth/profile", h.UpdateProfile)
		r.Put("/auth/theme", h.UpdateTheme)
		r.Put("/auth/password", h.ChangePassword)

		// categories
		r.Post("/categories", h.CreateCategory)
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{id}", h.GetCategory)
		r.Put("/categories/{id}", h.UpdateCategory)
		r.Delete("/categories/{id}", h.DeleteCategory)

		// transactions
		r.Post("/transactions", h.CreateTransaction)
		r.Get("/transactions", h.ListTransactions)
		r.Get("/transactions/{id}", h.GetTransaction)
		r.Put("/transactions/{id}", h.UpdateTransaction)
		r.Delete("/transactions/{id}", h.DeleteTransaction)

		// budgets
		r.Post("/budgets", h.CreateBudget)
		r.Get("/budgets", h.ListBudgets)
		r.Get("/budgets/{id}", h.GetBudget)
		r.Put("/budgets/{id}", h.UpdateBudget)
		r.Delete("/budgets/{id}", h.DeleteBudget)

		// goals
		r.Post("/goals", h.CreateGoal)
		r.Get("/goals", h.ListGoals)
		r.Get("/goals/{id}", h.GetGoal)
		r.Put("/goals/{id}", h.UpdateGoal)
		r.Post("/goals/{id}/contribute", h.Contribute)
		r.Delete("/goals/{id}", h.DeleteGoal)

		// analytics
		r.Get("/analytics/summary", h.Summary)
		r.Get("/analytics/by-category", h.SpendingByCategory)
		r.Get("/analytics/trends", h.Trends)
	})
}
