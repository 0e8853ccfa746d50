package commands_test

import (
	"errors"
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipCommand(id, "Northern Star", demoShip, cargo.RemoveByReference)
	require.NoError(t, err)

	var stored *ship.Ship
	mockRepo := new(MockVesselRepository)
	mockRepo.On("Add", ctx, mock.AnythingOfType("*ship.Ship")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*ship.Ship) }).
		Return(nil).Once()

	notifier := &recordingNotifier{}
	handler := commands.NewCreateShipCommandHandler(mockRepo, notifier)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	require.NotNil(t, stored)
	assert.True(t, id.IsEqual(stored.ID()))
	assert.Equal(t, "Northern Star", stored.Name())
	assert.Equal(t, demoShip, stored.Particulars())
	assert.Zero(t, stored.TotalLoad())

	// The handler's notifier is the one the ship reports to.
	assert.False(t, stored.RemoveUnit(cargo.MustNewUnit(1, "FF")))
	assert.Equal(t, []string{cargo.NoticeUnitNotFound}, notifier.messages())
}

func TestCreateShipCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	mockRepo := new(MockVesselRepository)
	handler := commands.NewCreateShipCommandHandler(mockRepo, nil)

	err := handler.Handle(ctx, commands.CreateShipCommand{})

	require.ErrorIs(t, err, commands.ErrCreateShipCommandIsNotConstructed)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateShipCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipCommand(kernel.NewUUID(), "Northern Star", demoShip, cargo.RemoveByStack)
	require.NoError(t, err)

	expectedErr := errors.New("already registered")
	mockRepo := new(MockVesselRepository)
	mockRepo.On("Add", ctx, mock.Anything).Return(expectedErr).Once()
	handler := commands.NewCreateShipCommandHandler(mockRepo, nil)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedErr)
	mockRepo.AssertExpectations(t)
}
