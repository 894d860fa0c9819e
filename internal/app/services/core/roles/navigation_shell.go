package roles

import (
	"context"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// Navigator performs the transition to the role's location.
type Navigator func(ctx context.Context, role models.Role, location string) error

// NavigationShell tracks the one role selection a client may have in flight.
type NavigationShell struct {
	mu       sync.Mutex
	inFlight models.Role
	log      *zap.Logger
}

func NewNavigationShell(logger *zap.Logger) *NavigationShell {
	return &NavigationShell{log: logger}
}

// InFlight reports the role whose transition is running, if any.
func (s *NavigationShell) InFlight() (models.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight, s.inFlight != ""
}

// Select runs the transition to the role's login route. While it runs every
// other Select on the shell is refused. A failed transition is logged and
// returned; it is not retried.
func (s *NavigationShell) Select(ctx context.Context, role models.Role, navigate Navigator) (string, error) {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	if s.inFlight != "" {
		inFlight := s.inFlight
		s.mu.Unlock()
		return "", exceptions.ErrNavigationInFlight(role.String(), inFlight.String())
	}
	s.inFlight = role
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = ""
		s.mu.Unlock()
	}()

	location := role.Path(models.ActionLogin)
	if navigate != nil {
		err := navigate(ctx, role, location)
		if err != nil {
			s.log.Error("NavigationShell.Select navigation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoleKey, role.String()),
				zap.Error(err),
			)
			return "", err
		}
	}

	return location, nil
}
