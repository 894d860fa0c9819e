package signup

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Observer is told about every lifecycle transition. It is called without
// the controller lock held, so it may read the controller back.
type Observer func(state models.SubmissionState, message string)

type Option func(*FormController)

func WithTimeout(timeout time.Duration) Option {
	return func(c *FormController) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *FormController) {
		if logger != nil {
			c.log = logger
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(c *FormController) {
		c.observers = append(c.observers, observer)
	}
}

// WithRedirect sets where a successful signup sends the user.
func WithRedirect(redirect func(role models.Role) string) Option {
	return func(c *FormController) {
		c.redirect = redirect
	}
}

type Outcome struct {
	Receipt    *models.AccountReceipt
	RedirectTo string
}

// FormController owns one signup draft and runs its submission lifecycle:
// idle -> submitting -> idle on success, submitting -> error on failure.
// While submitting, the draft cannot be changed and a second submit is refused.
type FormController struct {
	mu        sync.Mutex
	schema    *models.FormSchema
	creator   contracts.AccountCreator
	draft     *models.FormDraft
	state     models.SubmissionState
	message   string
	timeout   time.Duration
	log       *zap.Logger
	observers []Observer
	redirect  func(role models.Role) string
}

func NewFormController(schema *models.FormSchema, creator contracts.AccountCreator, opts ...Option) *FormController {
	controller := &FormController{
		schema:  schema,
		creator: creator,
		draft:   models.NewFormDraft(schema.Role),
		state:   models.SubmissionStateIdle,
		timeout: constvars.DefaultSubmissionTimeout,
		log:     zap.NewNop(),
		redirect: func(role models.Role) string {
			return role.Path(models.ActionLogin)
		},
	}
	for _, opt := range opts {
		opt(controller)
	}
	return controller
}

func (c *FormController) State() models.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message is the single message currently shown on the form, if any.
func (c *FormController) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Draft returns a copy of the current draft.
func (c *FormController) Draft() *models.FormDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

func (c *FormController) SetValue(name, value string) error {
	return c.mutate(name, func(field models.FormField) error {
		if !field.Kind.IsValue() {
			return exceptions.ErrFieldKindMismatch(name, string(field.Kind), "value")
		}
		c.draft.Values[name] = value
		return nil
	})
}

func (c *FormController) SetFlag(name string, value bool) error {
	return c.mutate(name, func(field models.FormField) error {
		if field.Kind != models.FieldKindCheckbox {
			return exceptions.ErrFieldKindMismatch(name, string(field.Kind), string(models.FieldKindCheckbox))
		}
		c.draft.Flags[name] = value
		return nil
	})
}

func (c *FormController) ToggleSelection(name, option string) error {
	return c.mutate(name, func(field models.FormField) error {
		if field.Kind != models.FieldKindMultiSelect {
			return exceptions.ErrFieldKindMismatch(name, string(field.Kind), string(models.FieldKindMultiSelect))
		}
		c.draft.Toggle(name, option)
		return nil
	})
}

// Attach checks attachment against the field's constraint and stores it.
// A rejected file never enters the draft and leaves any earlier file in place.
func (c *FormController) Attach(name string, attachment *models.FileAttachment) error {
	return c.mutate(name, func(field models.FormField) error {
		if field.Kind != models.FieldKindFile || field.Constraint == nil {
			return exceptions.ErrFieldKindMismatch(name, string(field.Kind), string(models.FieldKindFile))
		}

		var descriptor *models.FileDescriptor
		if attachment != nil {
			descriptor = &attachment.FileDescriptor
		}
		if err := utils.CheckFile(name, descriptor, *field.Constraint); err != nil {
			return err
		}

		c.draft.Files[name] = attachment
		return nil
	})
}

func (c *FormController) mutate(name string, apply func(field models.FormField) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.SubmissionStateSubmitting {
		return exceptions.ErrFormLocked(c.schema.Role.String())
	}

	field, ok := c.schema.Field(name)
	if !ok {
		return exceptions.ErrUnknownFormField(name, c.schema.Role.String())
	}
	return apply(field)
}

// Submit validates the draft and, when it is valid, hands a copy of it to the
// account creator under the controller timeout.
func (c *FormController) Submit(ctx context.Context) (*Outcome, error) {
	requestID := utils.GetRequestID(ctx)
	role := c.schema.Role.String()
	c.log.Info("FormController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	c.mu.Lock()
	if c.state == models.SubmissionStateSubmitting {
		c.mu.Unlock()
		return nil, exceptions.ErrSubmissionInFlight(role)
	}

	c.message = ""
	if result := forms.Validate(c.schema, c.draft); result != nil {
		c.message = result.Message
		c.mu.Unlock()

		c.log.Info("FormController.Submit validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, role),
			zap.String(constvars.LoggingRuleKey, result.Rule),
			zap.String(constvars.LoggingFieldKey, result.Field),
		)
		return nil, result.CustomError()
	}

	c.state = models.SubmissionStateSubmitting
	draft := c.draft.Clone()
	c.mu.Unlock()
	c.notify(models.SubmissionStateSubmitting, "")

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	receipt, err := c.creator.CreateAccount(ctxWithTimeout, draft)
	if err != nil {
		customErr := mapSubmissionError(err)
		c.finish(models.SubmissionStateError, customErr.ClientMessage, false)

		c.log.Error("FormController.Submit account creation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, role),
			zap.Error(err),
		)
		return nil, customErr
	}

	c.finish(models.SubmissionStateIdle, "", true)

	c.log.Info("FormController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
		zap.String(constvars.LoggingAccountIDKey, receipt.AccountID),
	)
	return &Outcome{
		Receipt:    receipt,
		RedirectTo: c.redirect(c.schema.Role),
	}, nil
}

func (c *FormController) finish(state models.SubmissionState, message string, resetDraft bool) {
	c.mu.Lock()
	c.state = state
	c.message = message
	if resetDraft {
		c.draft.Reset()
	}
	c.mu.Unlock()
	c.notify(state, message)
}

func (c *FormController) notify(state models.SubmissionState, message string) {
	for _, observer := range c.observers {
		observer(state, message)
	}
}

// mapSubmissionError keeps rejections the user can act on and folds every
// other failure into the generic signup failure.
func mapSubmissionError(err error) *exceptions.CustomError {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.IsClientError() {
		return customErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrSubmissionTimedOut(err)
	}
	return exceptions.ErrSubmissionFailed(err)
}
