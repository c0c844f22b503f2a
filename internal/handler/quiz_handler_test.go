package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов с JSON body
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// ============================================================================
// Валидация селектора категории — сервис не нужен:
// обработчик отвечает 400 до обращения к нему
// ============================================================================

func TestDrawQuestion_SelectorValidationErrors(t *testing.T) {
	handler := &QuizHandler{} // nil service — достаточно для validation tests

	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "empty body",
			body: nil,
		},
		{
			name: "missing quiz_category",
			body: map[string]interface{}{"previous_questions": []uint{1, 2}},
		},
		{
			name: "quiz_category without id",
			body: map[string]interface{}{
				"previous_questions": []uint{},
				"quiz_category":      map[string]interface{}{"type": "Science"},
			},
		},
		{
			name: "non-integer category id",
			body: map[string]interface{}{
				"quiz_category": map[string]interface{}{"id": "science"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/quizzes", tt.body)

			handler.DrawQuestion(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, float64(http.StatusBadRequest), resp["error"])
			assert.Equal(t, "bad request", resp["message"])
		})
	}
}

// ============================================================================
// Конверт ошибок исторического контракта
// ============================================================================

func TestRespondError_LegacyEnvelope(t *testing.T) {
	tests := []struct {
		status  int
		message string
	}{
		{http.StatusBadRequest, "bad request"},
		{http.StatusNotFound, "resource not found"},
		{http.StatusMethodNotAllowed, "method not allowed"},
		{http.StatusUnprocessableEntity, "unprocessable"},
		{http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		c, w := newTestGinContext(http.MethodGet, "/api/questions", nil)

		RespondError(c, tt.status)

		assert.Equal(t, tt.status, w.Code)
		resp := parseJSONResponse(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, float64(tt.status), resp["error"])
		assert.Equal(t, tt.message, resp["message"])
	}
}
