package handler

import (
	"net/http"
	"testing"

	"lastseen/internal/domain/entity"
	mockUsecase "lastseen/internal/mocks/usecase"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-9", Platform: "android"}).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-1", DeviceID: "pixel-9", Platform: "android", IsActive: true}, nil).
			Once()

		rec, _ := serve(t, route{
			method: http.MethodPost, pattern: "/devices", target: "/devices", viewer: userID,
			body:    `{"fcm_token":"fcm-1","device_id":"pixel-9","platform":"android"}`,
			handler: h.RegisterDevice,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})

		rec, env := serve(t, route{
			method: http.MethodPost, pattern: "/devices", target: "/devices", viewer: userID,
			body:    `{"fcm_token":"fcm-1","device_id":"pixel-9","platform":"symbian"}`,
			handler: h.RegisterDevice,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "oneof=ios android web", errorFields(env)["platform"])
	})
}
