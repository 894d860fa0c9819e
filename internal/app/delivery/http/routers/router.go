package routers

import (
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/delivery/http/controllers"
	"curasync-service/internal/app/delivery/http/middlewares"
	"curasync-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	formRateLimiter *middlewares.RateLimiter,
	roleController *controllers.RoleController,
	authController *controllers.AuthController,
	signupController *controllers.SignupController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID, constvars.HeaderXClientID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/roles", func(r chi.Router) {
				attachRoleRoutes(r, roleController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, roleController)
			})

			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, authController)
			})

			r.Route("/{role}", func(r chi.Router) {
				attachAuthRoutes(r, formRateLimiter, authController)
				attachSignupRoutes(r, formRateLimiter, signupController)
			})
		})
	})
}
