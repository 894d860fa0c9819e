package controllers

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	LoginUsecase   contracts.LoginUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, loginUsecase contracts.LoginUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		LoginUsecase:   loginUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) GetLoginForm(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("AuthController.GetLoginForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	result, err := ctrl.LoginUsecase.GetLoginForm(r.Context(), role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLoginFormSuccessMessage, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AuthController.Login error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.SubmitTimeout())
	defer cancel()

	result, err := ctrl.LoginUsecase.Login(ctx, role, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error from usecase",
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

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) GetSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token := utils.GetBearerToken(r)
	if token == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenInvalid(nil))
		return
	}

	result, err := ctrl.LoginUsecase.CurrentSession(r.Context(), token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token := utils.GetBearerToken(r)
	if token == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenInvalid(nil))
		return
	}

	err := ctrl.LoginUsecase.Logout(r.Context(), token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
