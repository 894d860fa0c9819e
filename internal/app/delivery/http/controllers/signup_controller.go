package controllers

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SignupController struct {
	Log            *zap.Logger
	SignupUsecase  contracts.SignupUsecase
	InternalConfig *config.InternalConfig
}

func NewSignupController(logger *zap.Logger, signupUsecase contracts.SignupUsecase, internalConfig *config.InternalConfig) *SignupController {
	return &SignupController{
		Log:            logger,
		SignupUsecase:  signupUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SignupController) GetSignupForm(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("SignupController.GetSignupForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	result, err := ctrl.SignupUsecase.GetSignupForm(r.Context(), role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSignupFormSuccessMessage, result)
}

// Signup accepts either a JSON body shaped like requests.Signup or a
// multipart form whose parts are named after the signup form fields.
func (ctrl *SignupController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	role := chi.URLParam(r, constvars.URLParamRole)
	ctrl.Log.Info("SignupController.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	schema, err := ctrl.SignupUsecase.GetSignupForm(r.Context(), role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))

	var (
		request *requests.Signup
		files   map[string]*models.FileAttachment
	)
	switch mediaType {
	case constvars.MIMEApplicationJSON:
		request, err = ctrl.decodeJSON(r)
	case constvars.MIMEMultipartForm:
		request, files, err = ctrl.decodeMultipart(r, schema)
	default:
		err = exceptions.ErrUnsupportedMediaType(mediaType)
	}
	if err != nil {
		ctrl.Log.Error("SignupController.Signup error decoding request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeSignupRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.SubmitTimeout())
	defer cancel()

	result, err := ctrl.SignupUsecase.Signup(ctx, role, request, files)
	if err != nil {
		ctrl.Log.Error("SignupController.Signup error from usecase",
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

	ctrl.Log.Info("SignupController.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, result)
}

func (ctrl *SignupController) decodeJSON(r *http.Request) (*requests.Signup, error) {
	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if request.Values == nil {
		request.Values = make(map[string]string)
	}
	return request, nil
}

// decodeMultipart maps form parts onto the draft shape using the field kinds
// of schema. Parts that match no field are passed through as values so the
// usecase rejects them.
func (ctrl *SignupController) decodeMultipart(r *http.Request, schema *models.FormSchema) (*requests.Signup, map[string]*models.FileAttachment, error) {
	if err := r.ParseMultipartForm(constvars.MaxMultipartMemoryInMB * constvars.BytesPerMegabyte); err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.Signup{
		Values:     make(map[string]string),
		Flags:      make(map[string]bool),
		Selections: make(map[string][]string),
	}
	for name, values := range r.MultipartForm.Value {
		if len(values) == 0 {
			continue
		}
		field, ok := schema.Field(name)
		switch {
		case ok && field.Kind == models.FieldKindCheckbox:
			request.Flags[name] = parseFlag(values[0])
		case ok && field.Kind == models.FieldKindMultiSelect:
			request.Selections[name] = values
		default:
			request.Values[name] = values[0]
		}
	}

	files := make(map[string]*models.FileAttachment)
	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		attachment, err := readAttachment(headers[0])
		if err != nil {
			return nil, nil, exceptions.ErrCannotReadFile(err, name)
		}
		files[name] = attachment
	}

	return request, files, nil
}

func readAttachment(header *multipart.FileHeader) (*models.FileAttachment, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.FileAttachment{
		FileDescriptor: models.FileDescriptor{
			Name:     header.Filename,
			MimeType: utils.ResolveMimeType(header.Header.Get(constvars.HeaderContentType), content),
			Size:     int64(len(content)),
		},
		Content: content,
	}, nil
}

func parseFlag(value string) bool {
	if value == constvars.FormFieldValueOn {
		return true
	}
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}
