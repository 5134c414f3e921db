package server

import (
	"net/http"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeHandler(t *testing.T) {
	t.Run("Like then unlike", func(t *testing.T) {
		ts := newTestServer(t)
		ts.messages.On("GetByID", mock.Anything, uint(5), uint(1)).Return(&models.Message{
			ID: 5, UserID: 2,
		}, nil)
		ts.likes.On("Exists", mock.Anything, uint(1), uint(5)).Return(false, nil).Once()
		ts.likes.On("Create", mock.Anything, uint(1), uint(5)).Return(nil)
		ts.likes.On("Exists", mock.Anything, uint(1), uint(5)).Return(true, nil).Once()
		ts.likes.On("Delete", mock.Anything, uint(1), uint(5)).Return(nil)

		sid := ts.login(t, 1)

		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/messages/5/like", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["liked"])

		resp, err = ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/messages/5/like", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["liked"])
	})

	t.Run("Own message forbidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.messages.On("GetByID", mock.Anything, uint(5), uint(1)).Return(&models.Message{
			ID: 5, UserID: 1,
		}, nil)

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/messages/5/like", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		ts.likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing message", func(t *testing.T) {
		ts := newTestServer(t)
		ts.messages.On("GetByID", mock.Anything, uint(99), uint(1)).
			Return(nil, models.NewNotFoundError("Message", 99))

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/messages/99/like", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Requires auth", func(t *testing.T) {
		ts := newTestServer(t)
		resp, err := ts.app.Test(jsonRequest(t, "POST", "/api/messages/5/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
