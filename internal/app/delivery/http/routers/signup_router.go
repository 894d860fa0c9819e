package routers

import (
	"curasync-service/internal/app/delivery/http/controllers"
	"curasync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSignupRoutes(router chi.Router, formRateLimiter *middlewares.RateLimiter, signupController *controllers.SignupController) {
	router.Get("/signup", signupController.GetSignupForm)
	router.With(formRateLimiter.Limit).Post("/signup", signupController.Signup)
}
