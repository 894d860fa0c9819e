package controllers

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoleController struct {
	Log         *zap.Logger
	RoleUsecase contracts.RoleUsecase
}

func NewRoleController(logger *zap.Logger, roleUsecase contracts.RoleUsecase) *RoleController {
	return &RoleController{
		Log:         logger,
		RoleUsecase: roleUsecase,
	}
}

func (ctrl *RoleController) ListRoles(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("RoleController.ListRoles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := ctrl.RoleUsecase.ListRoles(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRolesSuccessMessage, result)
}

func (ctrl *RoleController) FindRole(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("RoleController.FindRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	result, err := ctrl.RoleUsecase.FindRole(r.Context(), role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRoleSuccessMessage, result)
}

// Navigate resolves a role card selection into the login route of that role.
// A client may only have one navigation in flight at a time.
func (ctrl *RoleController) Navigate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("RoleController.Navigate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	if _, ok := models.ParseRole(role); !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRoleType(role))
		return
	}

	clientKey := utils.GetClientKey(r.Context())
	if clientKey == "" {
		clientKey = utils.ClientKey(r)
	}

	request := &requests.Navigation{
		ClientKey: clientKey,
		Role:      role,
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoleController.Navigate validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoleUsecase.Navigate(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoleController.Navigate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigationSuccessMessage, result)
}
