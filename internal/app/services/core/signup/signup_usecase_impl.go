package signup

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"sort"

	"go.uber.org/zap"
)

type signupUsecase struct {
	Registry       *forms.Registry
	AccountCreator contracts.AccountCreator
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSignupUsecase(
	registry *forms.Registry,
	accountCreator contracts.AccountCreator,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SignupUsecase {
	return &signupUsecase{
		Registry:       registry,
		AccountCreator: accountCreator,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *signupUsecase) GetSignupForm(ctx context.Context, role string) (*models.FormSchema, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("signupUsecase.GetSignupForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role)
	}
	return uc.Registry.SignupSchema(parsedRole)
}

// Signup replays the submitted draft into a fresh FormController and submits it.
func (uc *signupUsecase) Signup(ctx context.Context, role string, request *requests.Signup, files map[string]*models.FileAttachment) (*responses.Signup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("signupUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	schema, err := uc.GetSignupForm(ctx, role)
	if err != nil {
		return nil, err
	}

	controller := NewFormController(schema, uc.AccountCreator,
		WithTimeout(uc.InternalConfig.SubmitTimeout()),
		WithLogger(uc.Log),
	)

	err = fillController(controller, request, files)
	if err != nil {
		uc.Log.Info("signupUsecase.Signup rejected draft input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	outcome, err := controller.Submit(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("signupUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, outcome.Receipt.AccountID),
	)
	return &responses.Signup{
		Receipt:    outcome.Receipt,
		State:      string(controller.State()),
		RedirectTo: outcome.RedirectTo,
	}, nil
}

// fillController applies the request in a fixed order so the first rejected
// field is the same for equal requests.
func fillController(controller *FormController, request *requests.Signup, files map[string]*models.FileAttachment) error {
	if request != nil {
		for _, name := range sortedKeys(request.Values) {
			if err := controller.SetValue(name, request.Values[name]); err != nil {
				return err
			}
		}
		for _, name := range sortedKeys(request.Flags) {
			if err := controller.SetFlag(name, request.Flags[name]); err != nil {
				return err
			}
		}
		for _, name := range sortedKeys(request.Selections) {
			seen := make(map[string]bool, len(request.Selections[name]))
			for _, option := range request.Selections[name] {
				if seen[option] {
					continue
				}
				seen[option] = true
				if err := controller.ToggleSelection(name, option); err != nil {
					return err
				}
			}
		}
	}

	for _, name := range sortedKeys(files) {
		if err := controller.Attach(name, files[name]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
