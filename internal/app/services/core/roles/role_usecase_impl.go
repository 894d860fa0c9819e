package roles

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type shellEntry struct {
	shell *NavigationShell
	refs  int
}

type roleUsecase struct {
	Navigator Navigator
	Log       *zap.Logger
	mu        sync.Mutex
	shells    map[string]*shellEntry
}

// NewRoleUsecase keeps one NavigationShell per client key for as long as
// the client has a selection running.
func NewRoleUsecase(navigator Navigator, logger *zap.Logger) contracts.RoleUsecase {
	return &roleUsecase{
		Navigator: navigator,
		Log:       logger,
		shells:    make(map[string]*shellEntry),
	}
}

func (uc *roleUsecase) ListRoles(ctx context.Context) []models.RoleCard {
	uc.Log.Info("roleUsecase.ListRoles called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return Cards()
}

func (uc *roleUsecase) FindRole(ctx context.Context, role string) (*models.RoleCard, error) {
	uc.Log.Info("roleUsecase.FindRole called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoleKey, role),
	)

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role)
	}
	card, ok := FindCard(parsedRole)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role)
	}
	return &card, nil
}

func (uc *roleUsecase) Navigate(ctx context.Context, request *requests.Navigation) (*responses.Navigation, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("roleUsecase.Navigate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientKey, request.ClientKey),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	role, ok := models.ParseRole(request.Role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(request.Role)
	}

	shell := uc.acquireShell(request.ClientKey)
	defer uc.releaseShell(request.ClientKey)

	location, err := shell.Select(ctx, role, uc.Navigator)
	if err != nil {
		return nil, err
	}

	return &responses.Navigation{
		Role:     role.String(),
		Location: location,
	}, nil
}

func (uc *roleUsecase) acquireShell(clientKey string) *NavigationShell {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.shells[clientKey]
	if !ok {
		entry = &shellEntry{shell: NewNavigationShell(uc.Log)}
		uc.shells[clientKey] = entry
	}
	entry.refs++
	return entry.shell
}

func (uc *roleUsecase) releaseShell(clientKey string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.shells[clientKey]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(uc.shells, clientKey)
	}
}
