package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fitcore/pkg/utils"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	res := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(res)
	utils.HandleServiceError(c, err)
	return res.Code
}

func TestServiceErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFor(utils.ErrInvalidToken))
	assert.Equal(t, http.StatusBadRequest, statusFor(utils.ErrInvalidCredentials))
	assert.Equal(t, http.StatusConflict, statusFor(utils.ErrEmailAlreadyExists))
	assert.Equal(t, http.StatusConflict, statusFor(utils.ErrProfileAlreadyExists))
	assert.Equal(t, http.StatusNotFound, statusFor(utils.ErrProfileNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(utils.ErrPlanInUse))
	assert.Equal(t, http.StatusInternalServerError, statusFor(utils.ErrDatabaseError))
}
