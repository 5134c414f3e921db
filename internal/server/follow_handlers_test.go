package server

import (
	"net/http"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollowUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
		ts.follows.On("Create", mock.Anything, uint(1), uint(2)).Return(nil)

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/users/2/follow", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["following"])
	})

	t.Run("Self follow rejected", func(t *testing.T) {
		ts := newTestServer(t)

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/users/1/follow", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		ts.follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing target", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("User", 99))

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "POST", "/api/users/99/follow", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Requires auth", func(t *testing.T) {
		ts := newTestServer(t)
		resp, err := ts.app.Test(jsonRequest(t, "POST", "/api/users/2/follow", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUnfollowUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.follows.On("Delete", mock.Anything, uint(1), uint(2)).Return(nil)

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "DELETE", "/api/users/2/follow", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["following"])
	})

	t.Run("Absent edge", func(t *testing.T) {
		ts := newTestServer(t)
		ts.follows.On("Delete", mock.Anything, uint(1), uint(2)).
			Return(models.NewNotFoundError("Follow", 2))

		sid := ts.login(t, 1)
		resp, err := ts.app.Test(authenticated(jsonRequest(t, "DELETE", "/api/users/2/follow", nil), sid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
