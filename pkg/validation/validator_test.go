package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charitie/DevConnector/pkg/response"
)

type samplePayload struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FieldOfStudy string `json:"fieldofstudy"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func msgsOf(items []response.ErrorItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Msg)
	}
	return out
}

func TestToErrorsFieldMessages(t *testing.T) {
	err := bindSample(t, `{"email":"nope","password":"abc"}`)
	require.Error(t, err)

	items := ToErrors(err)
	msgs := msgsOf(items)
	assert.Contains(t, msgs, "Name is required")
	assert.Contains(t, msgs, "Please include a valid email")
	assert.Contains(t, msgs, "Please enter a password with 6 or more characters")
}

func TestToErrorsUsesJSONFieldNames(t *testing.T) {
	err := bindSample(t, `{}`)
	require.Error(t, err)

	params := make([]string, 0)
	for _, it := range ToErrors(err) {
		params = append(params, it.Param)
	}
	assert.Contains(t, params, "name")
	assert.Contains(t, params, "email")
	assert.Contains(t, params, "password")
}

func TestToErrorsBadJSON(t *testing.T) {
	err := bindSample(t, `{not json`)
	require.Error(t, err)

	items := ToErrors(err)
	require.Len(t, items, 1)
	assert.Equal(t, "Invalid JSON payload", items[0].Msg)
}

func TestToErrorsNil(t *testing.T) {
	assert.Nil(t, ToErrors(nil))
}
