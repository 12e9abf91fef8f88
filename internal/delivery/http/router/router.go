// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"biblio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered by the router, injected by Fx.
type RouterParams struct {
	fx.In

	AuthorHandler     *handler.AuthorHandler
	BookHandler       *handler.BookHandler
	UserHandler       *handler.UserHandler
	LoanHandler       *handler.LoanHandler
	StatisticsHandler *handler.StatisticsHandler
	ReportHandler     *handler.ReportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authorHandler     *handler.AuthorHandler
	bookHandler       *handler.BookHandler
	userHandler       *handler.UserHandler
	loanHandler       *handler.LoanHandler
	statisticsHandler *handler.StatisticsHandler
	reportHandler     *handler.ReportHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authorHandler:     params.AuthorHandler,
		bookHandler:       params.BookHandler,
		userHandler:       params.UserHandler,
		loanHandler:       params.LoanHandler,
		statisticsHandler: params.StatisticsHandler,
		reportHandler:     params.ReportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authorGroup := e.Group("/authors")
	{
		authorGroup.POST("", r.authorHandler.Create)
		authorGroup.GET("", r.authorHandler.List)
		authorGroup.GET("/:id", r.authorHandler.Get)
		authorGroup.PUT("/:id", r.authorHandler.Update)
		authorGroup.DELETE("/:id", r.authorHandler.Deactivate)
		authorGroup.GET("/:id/books", r.bookHandler.ListByAuthor)
	}

	bookGroup := e.Group("/books")
	{
		bookGroup.POST("", r.bookHandler.Create)
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/in-stock", r.bookHandler.ListInStock)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.PUT("/:id", r.bookHandler.Update)
		bookGroup.DELETE("/:id", r.bookHandler.Delete)
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/cpf/:cpf", r.userHandler.GetByCPF)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Deactivate)
		userGroup.GET("/:id/loans/active", r.loanHandler.ListActiveByUser)
		userGroup.GET("/:id/loans/history", r.loanHandler.ListHistoryByUser)
	}

	loanGroup := e.Group("/loans")
	{
		loanGroup.POST("", r.loanHandler.Create)
		loanGroup.GET("/:id", r.loanHandler.Get)
		loanGroup.POST("/:id/return", r.loanHandler.Return)
		loanGroup.POST("/:id/renew", r.loanHandler.Renew)
	}

	statsGroup := e.Group("/statistics")
	{
		statsGroup.GET("/top-books", r.statisticsHandler.TopBooks)
		statsGroup.GET("/top-authors", r.statisticsHandler.TopAuthors)
	}

	reportGroup := e.Group("/reports")
	{
		reportGroup.GET("/pending-fines", r.reportHandler.PendingFines)
		reportGroup.GET("/overdue-users", r.reportHandler.OverdueUsers)
	}
}
