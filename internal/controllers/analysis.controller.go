package controllers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fittrack/internal/analysis"

	"github.com/gin-gonic/gin"
)

// AnalysisController serves CSV upload analysis and plotting. Responses
// keep the original API's bare bodies; failures use the {"detail": ...}
// shape the upload pages expect.
type AnalysisController struct{}

func NewAnalysisController() *AnalysisController {
	return &AnalysisController{}
}

func readCSVUpload(c *gin.Context) (*analysis.Dataset, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("a CSV file upload is required")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return nil, fmt.Errorf("Only CSV files are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("Error processing file: %v", err)
	}
	defer file.Close()

	ds, err := analysis.ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("Error processing file: %v", err)
	}
	return ds, nil
}

// AnalyzeData godoc
// @Summary Analyze uploaded data
// @Description Summarize an uploaded CSV: shape, types, missing values, statistics, sample rows
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} analysis.Summary
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Router /api/analyze-data [post]
func (ac *AnalysisController) AnalyzeData(c *gin.Context) {
	ds, err := readCSVUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ds.Summarize())
}

// GeneratePlot godoc
// @Summary Generate a plot
// @Description Render a chart from an uploaded CSV and a plot configuration
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param plot_config formData string false "Plot configuration JSON"
// @Success 200 {object} map[string]string "Base64 PNG data URI"
// @Failure 400 {object} map[string]interface{} "Invalid upload or configuration"
// @Router /api/generate-plot [post]
func (ac *AnalysisController) GeneratePlot(c *gin.Context) {
	ds, err := readCSVUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var cfg analysis.PlotConfig
	if raw := c.PostForm("plot_config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Invalid plot configuration: %v", err)})
			return
		}
	}
	cfg.XAxis = strings.TrimSpace(cfg.XAxis)
	cfg.YAxis = strings.TrimSpace(cfg.YAxis)
	cfg.LegendAttr = strings.TrimSpace(cfg.LegendAttr)

	png, err := analysis.RenderPlot(ds, cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Error generating plot: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plot": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}
