package service

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/billkeeper/internal/auth"
	"github.com/mmynk/billkeeper/internal/middleware"
)

// RegisterRoutes mounts every API route on the echo instance.
//
// Only the two billing-list routes sit behind the auth gate. Token
// issuance happens exclusively through /api/login — there is no
// standalone signing endpoint.
func RegisterRoutes(e *echo.Echo, authSvc *AuthService, billSvc *BillService, jwtManager *auth.JWTManager) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello From server!")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/registration", authSvc.Register)
	api.POST("/login", authSvc.Login)
	api.POST("/getUserData", authSvc.GetUserData)

	gated := api.Group("/billing-list", middleware.RequireAuth(jwtManager))
	gated.GET("", billSvc.List)
	gated.GET("/:search", billSvc.Search)

	api.POST("/add-billing", billSvc.Add)
	api.PUT("/update-billing/:id", billSvc.Update)
	api.DELETE("/delete-billing/:id", billSvc.Delete)
}
