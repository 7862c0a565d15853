package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/settings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewRequestValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdateLockMessage_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSettingsUC(ctrl)
	h := NewSettingsHandler(mockUC)

	c, rec := newContext(http.MethodPut, "/api/admin/settings/lock-message/Church", `{"message":"Opens at 9am"}`)
	c.SetParamNames("category")
	c.SetParamValues("Church")

	mockUC.EXPECT().
		Set(gomock.Any(), "church_voting_lock_message", "Opens at 9am", gomock.Any()).
		Return(nil)

	// Act
	err := h.UpdateLockMessage(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateLockMessage_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettingsHandler(mocks.NewMockSettingsUC(ctrl))
	c, rec := newContext(http.MethodPut, "/", `{"message":"x"}`)
	c.SetParamNames("category")
	c.SetParamValues("county")

	require.NoError(t, h.UpdateLockMessage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLockMessage_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettingsHandler(mocks.NewMockSettingsUC(ctrl))
	c, rec := newContext(http.MethodPut, "/", `{"message":""}`)
	c.SetParamNames("category")
	c.SetParamValues("national")

	require.NoError(t, h.UpdateLockMessage(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "message")
}

func TestUpdatePublicResults(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockSettingsUC)
		expectedStatus int
	}{
		{
			name: "enable",
			body: `{"enabled":true}`,
			setup: func(m *mocks.MockSettingsUC) {
				m.EXPECT().SetBool(gomock.Any(), models.SettingPublicResultsEnabled, true, gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "disable",
			body: `{"enabled":false}`,
			setup: func(m *mocks.MockSettingsUC) {
				m.EXPECT().SetBool(gomock.Any(), models.SettingPublicResultsEnabled, false, gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing flag",
			body:           `{}`,
			setup:          func(m *mocks.MockSettingsUC) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store failure",
			body: `{"enabled":true}`,
			setup: func(m *mocks.MockSettingsUC) {
				m.EXPECT().SetBool(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockSettingsUC(ctrl)
			tt.setup(mockUC)
			c, rec := newContext(http.MethodPut, "/api/admin/settings/public-results", tt.body)

			require.NoError(t, NewSettingsHandler(mockUC).UpdatePublicResults(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
