package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"navlun.com/app/internal/catalog"
	"navlun.com/app/internal/http/handlers"
	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/internal/http/tokencookie"
	"navlun.com/app/internal/modules/accounts"
	"navlun.com/app/internal/modules/pricing"
)

// NewRouter assembles the middleware chain and all routes. Ordering
// matters: request id first so the logger and error handler can tag
// everything, error handler upstream of recovery so a recovered panic
// still renders as a 500.
func NewRouter(logger *slog.Logger, db *gorm.DB, cat *catalog.Catalog) *gin.Engine {
	r := gin.New()

	tokens := tokencookie.New(tokencookie.NewGormBackend(db))

	accountRepo := accounts.NewRepo(db)
	accountSvc := accounts.NewService(accountRepo)

	pricingSvc := pricing.NewService(pricing.NewRepo(db))

	catalogH := handlers.NewCatalogHandler(cat)
	selectorH := handlers.NewSelectorHandler(cat)
	pricingH := handlers.NewPricingHandler(pricingSvc)
	authH := handlers.NewAuthHandler(accountSvc, accountRepo, tokens)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Auth(tokens))

	api := r.Group("/api")
	{
		api.GET("/catalog/containers", catalogH.ListContainers)
		api.GET("/catalog/containers/detail", catalogH.ContainerDetail)
		api.GET("/catalog/containers/:id/illustration.svg", catalogH.ContainerIllustration)
		api.GET("/catalog/trucks", catalogH.ListTrucks)
		api.GET("/catalog/trucks/:id/illustration.svg", catalogH.TruckIllustration)

		api.POST("/selector", selectorH.Open)
		api.GET("/selector/:id", selectorH.State)
		api.POST("/selector/:id/tab", selectorH.SwitchTab)
		api.POST("/selector/:id/choose", selectorH.Choose)
		api.POST("/selector/:id/confirm", selectorH.Confirm)
		api.POST("/selector/:id/cancel", selectorH.Cancel)

		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", authH.Logout)
		api.GET("/auth/me", authH.Me)

		priced := api.Group("/pricing", middleware.RequireAuth())
		{
			priced.POST("/inspections", pricingH.CreateInspection)
			priced.GET("/inspections", pricingH.ListInspections)
			priced.PATCH("/inspections/:id", pricingH.UpdateInspection)
			priced.DELETE("/inspections/:id", pricingH.DeleteInspection)

			priced.POST("/freight-rates", pricingH.CreateFreightRate)
			priced.GET("/freight-rates", pricingH.ListFreightRates)
			priced.PATCH("/freight-rates/:id", pricingH.UpdateFreightRate)
			priced.DELETE("/freight-rates/:id", pricingH.DeleteFreightRate)
		}
	}

	return r
}
