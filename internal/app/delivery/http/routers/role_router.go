package routers

import (
	"curasync-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRoleRoutes(router chi.Router, roleController *controllers.RoleController) {
	router.Get("/", roleController.ListRoles)
	router.Get("/{role}", roleController.FindRole)
}

func attachNavigationRoutes(router chi.Router, roleController *controllers.RoleController) {
	router.Post("/{role}", roleController.Navigate)
}
