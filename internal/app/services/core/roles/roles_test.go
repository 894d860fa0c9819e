package roles

import (
	"context"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCards(t *testing.T) {
	cards := Cards()

	require.Len(t, cards, 4)
	assert.Equal(t, models.RoleDoctor, cards[0].Role)
	assert.Equal(t, "FaUserMd", cards[0].Icon)
	assert.Equal(t, "Laboratory", cards[2].Title)
	assert.Equal(t, "Sign in as a Laboratory", cards[2].AriaLabel)
	assert.Equal(t, "/pharmacy/login", cards[3].LoginPath)
	assert.Equal(t, "/pharmacy/signup", cards[3].SignupPath)

	cards[0].Title = "changed"
	assert.Equal(t, "Doctor", Cards()[0].Title)
}

func TestNavigationShell(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves the login route", func(t *testing.T) {
		shell := NewNavigationShell(zap.NewNop())

		location, err := shell.Select(ctx, models.RoleLab, nil)

		require.NoError(t, err)
		assert.Equal(t, "/lab/login", location)
		_, busy := shell.InFlight()
		assert.False(t, busy)
	})

	t.Run("Refuses a second selection while one is in flight", func(t *testing.T) {
		shell := NewNavigationShell(zap.NewNop())
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			_, err := shell.Select(ctx, models.RoleDoctor, func(ctx context.Context, role models.Role, location string) error {
				close(started)
				<-release
				return nil
			})
			done <- err
		}()
		<-started

		inFlight, busy := shell.InFlight()
		assert.True(t, busy)
		assert.Equal(t, models.RoleDoctor, inFlight)

		_, err := shell.Select(ctx, models.RolePatient, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 409, customErr.StatusCode)

		close(release)
		require.NoError(t, <-done)

		_, err = shell.Select(ctx, models.RolePatient, nil)
		assert.NoError(t, err)
	})

	t.Run("Failed navigation clears the in-flight mark", func(t *testing.T) {
		shell := NewNavigationShell(zap.NewNop())
		calls := 0

		_, err := shell.Select(ctx, models.RolePharmacy, func(ctx context.Context, role models.Role, location string) error {
			calls++
			return errors.New("route unavailable")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
		_, busy := shell.InFlight()
		assert.False(t, busy)
	})
}

func TestRoleUsecase(t *testing.T) {
	ctx := context.Background()
	uc := NewRoleUsecase(nil, zap.NewNop())

	t.Run("FindRole", func(t *testing.T) {
		card, err := uc.FindRole(ctx, "PATIENT")
		require.NoError(t, err)
		assert.Equal(t, "Patient account for appointments", card.Description)

		_, err = uc.FindRole(ctx, "nurse")
		assert.Error(t, err)
	})

	t.Run("Navigate", func(t *testing.T) {
		result, err := uc.Navigate(ctx, &requests.Navigation{ClientKey: "client-1", Role: "doctor"})

		require.NoError(t, err)
		assert.Equal(t, "/doctor/login", result.Location)
		assert.Empty(t, uc.(*roleUsecase).shells)
	})

	t.Run("Separate clients do not block each other", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		blocking := NewRoleUsecase(func(ctx context.Context, role models.Role, location string) error {
			if role == models.RoleDoctor {
				close(started)
				<-release
			}
			return nil
		}, zap.NewNop())

		done := make(chan error, 1)
		go func() {
			_, err := blocking.Navigate(ctx, &requests.Navigation{ClientKey: "a", Role: "doctor"})
			done <- err
		}()
		<-started

		_, err := blocking.Navigate(ctx, &requests.Navigation{ClientKey: "b", Role: "lab"})
		assert.NoError(t, err)

		_, err = blocking.Navigate(ctx, &requests.Navigation{ClientKey: "a", Role: "lab"})
		assert.Error(t, err)

		close(release)
		assert.NoError(t, <-done)
	})
}
