package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/assistant"
	"github.com/monevo-app/monevo-api/internal/auth"
	"github.com/monevo-app/monevo-api/internal/category"
	"github.com/monevo-app/monevo-api/internal/container"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/invoice"
	"github.com/monevo-app/monevo-api/internal/middlewares"
	"github.com/monevo-app/monevo-api/internal/notification"
	"github.com/monevo-app/monevo-api/internal/recurrence"
	"github.com/monevo-app/monevo-api/internal/transaction"
	"github.com/monevo-app/monevo-api/internal/user"
)

// New returns a *chi.Mux so the Lambda adapter can wrap it directly.
func New(c *container.Container) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/registro", c.UserContainer.Handler.Register)
		r.Post("/login", c.UserContainer.Handler.Login)
		r.Post("/google", c.UserContainer.Handler.GoogleLogin)
		r.Post("/refresh", c.UserContainer.Handler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// the wizard registers the user, so it stays outside the auth group
	r.Post("/onboarding", c.OnboardingContainer.Handler.Complete)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/usuarios", user.Routes(c.UserContainer.Handler))
		r.Mount("/metas", goal.Routes(c.GoalContainer.Handler))
		r.Mount("/categorias", category.Routes(c.CategoryContainer.Handler))
		r.Mount("/contas", account.Routes(c.AccountContainer.Handler))
		r.Mount("/recorrencias", recurrence.Routes(c.RecurrenceContainer.Handler))
		r.Mount("/transacoes", transaction.Routes(c.TransactionContainer.Handler))
		r.Mount("/faturas", invoice.Routes(c.InvoiceContainer.Handler))
		r.Mount("/ia", assistant.Routes(c.AssistantContainer.Handler))
		r.Mount("/notificacoes", notification.Routes(c.NotificationContainer.Handler))

		r.Get("/onboarding", c.OnboardingContainer.Handler.Get)
		r.Patch("/onboarding", c.OnboardingContainer.Handler.Update)
	})

	return r
}
