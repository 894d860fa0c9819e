package routers

import (
	"curasync-service/internal/app/delivery/http/controllers"
	"curasync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Get("/", authController.GetSession)
	router.Delete("/", authController.Logout)
}

func attachAuthRoutes(router chi.Router, formRateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Get("/login", authController.GetLoginForm)
	router.With(formRateLimiter.Limit).Post("/login", authController.Login)
}
