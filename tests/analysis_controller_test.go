package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/internal/controllers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workoutsCSV = "date,type,calories,duration\n" +
	"2024-03-01,Jogging,320,45\n" +
	"2024-03-02,Cycling,280,40\n" +
	"2024-03-03,Jogging,350,50\n"

func csvUploadRequest(t *testing.T, target, filename, contents string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAnalyzeData(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/analyze-data", controller.AnalyzeData)

	req := csvUploadRequest(t, "/analyze-data", "workouts.csv", workoutsCSV, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(3), response["rows"])
	assert.Equal(t, float64(4), response["columns"])

	types := response["data_types"].(map[string]interface{})
	assert.Equal(t, "number", types["calories"])
	assert.Equal(t, "string", types["type"])

	stats := response["summary_stats"].(map[string]interface{})
	assert.Contains(t, stats, "duration")
}

func TestAnalyzeDataRejectsNonCSV(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/analyze-data", controller.AnalyzeData)

	req := csvUploadRequest(t, "/analyze-data", "notes.txt", "plain text", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["detail"], "CSV")
}

func TestAnalyzeDataMissingFile(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/analyze-data", controller.AnalyzeData)

	req := httptest.NewRequest("POST", "/analyze-data", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlot(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/generate-plot", controller.GeneratePlot)

	cfg := `{"x_axis":"duration","y_axis":"calories","graph_type":"Scatter"}`
	req := csvUploadRequest(t, "/generate-plot", "workouts.csv", workoutsCSV, map[string]string{"plot_config": cfg})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(response["plot"].(string), "data:image/png;base64,"))
}

func TestGeneratePlotUnknownColumn(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/generate-plot", controller.GeneratePlot)

	cfg := `{"x_axis":"nope","y_axis":"calories"}`
	req := csvUploadRequest(t, "/generate-plot", "workouts.csv", workoutsCSV, map[string]string{"plot_config": cfg})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["detail"], "invalid column names")
}

func TestGeneratePlotMalformedConfig(t *testing.T) {
	router := setupTestRouter()
	controller := controllers.NewAnalysisController()
	router.POST("/generate-plot", controller.GeneratePlot)

	req := csvUploadRequest(t, "/generate-plot", "workouts.csv", workoutsCSV, map[string]string{"plot_config": "{not json"})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
