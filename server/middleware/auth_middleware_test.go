package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"jobpilot-backend/shared/database/models"
)

func TestCurrentUserWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}

func TestCurrentUserReturnsAttachedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	user := models.User{ID: uuid.New(), FullName: "Alice", OrgEmail: "a@x.com"}
	c.Set(userContextKey, user)

	got, ok := CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}
