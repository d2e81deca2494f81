package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	mockUsecase "lastseen/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConnectionsHandler(t *testing.T) (*ConnectionsHandler, *mockUsecase.MockConnectionsUsecase) {
	t.Helper()

	connectionsUC := mockUsecase.NewMockConnectionsUsecase(t)

	return NewConnectionsHandler(ConnectionsHandlerParams{ConnectionsUC: connectionsUC}), connectionsUC
}

func TestConnectionsHandler_List(t *testing.T) {
	h, connectionsUC := newTestConnectionsHandler(t)
	userID := uuid.New()
	friend := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	connectionsUC.EXPECT().ListConnections(mock.Anything, userID).Return([]*entity.User{friend}, nil).Once()

	rec, env := serve(t, route{method: http.MethodGet, pattern: "/circle/connections", target: "/circle/connections", viewer: userID, handler: h.List})

	require.Equal(t, http.StatusOK, rec.Code)
	var connections []ConnectionResponse
	require.NoError(t, json.Unmarshal(env.Data, &connections))
	require.Len(t, connections, 1)
	assert.Equal(t, friend.ID, connections[0].ID)
	assert.Equal(t, "ana", connections[0].DisplayName)
}

func TestConnectionsHandler_Add(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, connectionsUC := newTestConnectionsHandler(t)
		friend := &entity.User{ID: uuid.New(), Email: "ana@example.com", DisplayName: "Ana"}
		connectionsUC.EXPECT().AddConnection(mock.Anything, userID, "ana@example.com").Return(friend, nil).Once()

		rec, env := serve(t, route{
			method: http.MethodPost, pattern: "/circle/connections", target: "/circle/connections", viewer: userID,
			body: `{"email":"ana@example.com"}`, handler: h.Add,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var connection ConnectionResponse
		require.NoError(t, json.Unmarshal(env.Data, &connection))
		assert.Equal(t, friend.ID, connection.ID)
	})

	t.Run("malformed e-mail", func(t *testing.T) {
		h, _ := newTestConnectionsHandler(t)

		rec, env := serve(t, route{
			method: http.MethodPost, pattern: "/circle/connections", target: "/circle/connections", viewer: userID,
			body: `{"email":"not-an-email"}`, handler: h.Add,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email", errorFields(env)["email"])
	})

	t.Run("unregistered e-mail", func(t *testing.T) {
		h, connectionsUC := newTestConnectionsHandler(t)
		connectionsUC.EXPECT().AddConnection(mock.Anything, userID, "new@example.com").Return(nil, domainerrors.ErrInviteRequired).Once()

		rec, env := serve(t, route{
			method: http.MethodPost, pattern: "/circle/connections", target: "/circle/connections", viewer: userID,
			body: `{"email":"new@example.com"}`, handler: h.Add,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "INVITE_REQUIRED", errorCode(env))
	})
}

func TestConnectionsHandler_Remove(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	h, connectionsUC := newTestConnectionsHandler(t)
	connectionsUC.EXPECT().RemoveConnection(mock.Anything, userID, targetID).Return(nil).Once()

	rec, _ := serve(t, route{
		method: http.MethodDelete, pattern: "/circle/connections/:id", target: "/circle/connections/" + targetID.String(),
		viewer: userID, handler: h.Remove,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
