package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/detection"
	"swasthya/internal/plans"
	"swasthya/internal/repository"
)

// multipartOverhead is allowed on top of the image limit for form boundaries
// and part headers.
const multipartOverhead = 64 << 10

type ScanController struct {
	repo      repository.SessionRepository
	detector  detection.FoodDetector
	maxUpload int64
}

func NewScanController(repo repository.SessionRepository, detector detection.FoodDetector, maxUploadBytes int64) *ScanController {
	return &ScanController{repo: repo, detector: detector, maxUpload: maxUploadBytes}
}

// ScanFood godoc
// @Summary Scan a food photo
// @Description Detect dishes in a JPEG or PNG photo and estimate their nutrition. Nothing is logged.
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Food photo"
// @Success 200 {object} map[string]interface{} "Food scanned successfully"
// @Failure 400 {object} map[string]interface{} "Invalid image"
// @Failure 413 {object} map[string]interface{} "Image too large"
// @Router /scan [post]
func (sc *ScanController) ScanFood(c *gin.Context) {
	if sc.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sc.maxUpload+multipartOverhead)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "error",
				"message": "Image too large",
				"error":   fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Image is required",
			"error":   err.Error(),
		})
		return
	}
	if sc.maxUpload > 0 && fileHeader.Size > sc.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "Image too large",
			"error":   fmt.Sprintf("image is %d bytes, limit is %d", fileHeader.Size, sc.maxUpload),
		})
		return
	}

	s, ok := currentSession(c, sc.repo)
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, "Failed to read image", err)
		return
	}
	defer file.Close()

	img, mime, err := detection.DecodeImage(file)
	if err != nil {
		respondError(c, "Invalid image", err)
		return
	}

	result, err := detection.Analyze(c.Request.Context(), sc.detector, img, s.Profile.HealthConditions)
	if err != nil {
		log.Printf("Error scanning %s for session %s: %v", mime, s.ID, err)
		respondError(c, "Failed to scan image", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food scanned successfully",
		"data": gin.H{
			"scan": result,
			"tips": plans.ScanTips(),
		},
	})
}
