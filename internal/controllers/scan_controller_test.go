package controllers_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthya/internal/controllers"
	"swasthya/internal/detection"
	"swasthya/internal/models"
	"swasthya/internal/repository/mocks"
)

type stubDetector struct {
	foods []detection.DetectedFood
	err   error
	seen  image.Rectangle
}

func (s *stubDetector) Detect(_ context.Context, img image.Image) ([]detection.DetectedFood, error) {
	s.seen = img.Bounds()
	return s.foods, s.err
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// hugePNGHeader declares a 40000x40000 grayscale PNG without any pixel data.
func hugePNGHeader() []byte {
	ihdr := make([]byte, 17)
	copy(ihdr, "IHDR")
	binary.BigEndian.PutUint32(ihdr[4:], 40000)
	binary.BigEndian.PutUint32(ihdr[8:], 40000)
	ihdr[12] = 8

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(13))
	buf.Write(ihdr)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(ihdr))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "plate.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/scan", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serveScan(t *testing.T, controller *controllers.ScanController, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	router := setupTestRouter()
	router.Use(addSessionMiddleware(testSessionID))
	router.POST("/scan", controller.ScanFood)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestScanFood(t *testing.T) {
	s := sessionFixture()
	s.Profile.HealthConditions = []models.HealthCondition{models.ConditionDiabetes}
	mockRepo := new(mocks.MockSessionRepository)
	mockRepo.On("FindByID", testSessionID).Return(s, nil)
	detector := &stubDetector{foods: []detection.DetectedFood{
		{Name: "Dal Bhat", Confidence: 0.9, Calories: 420, Quantity: 1, ServingInfo: "1 serving"},
	}}
	controller := controllers.NewScanController(mockRepo, detector, 1<<20)

	w, response := serveScan(t, controller, multipartRequest(t, "image", pngBytes(t, 1280, 960)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Food scanned successfully", response["message"])
	assert.Equal(t, image.Rect(0, 0, 640, 480), detector.seen)
	scan := dataOf(t, response)["scan"].(map[string]interface{})
	assert.Len(t, scan["detected_foods"], 1)
	nutrition := scan["nutrition"].(map[string]interface{})
	assert.Equal(t, float64(420), nutrition["total_calories"])
	assert.NotEmpty(t, scan["recommendations"])
	mockRepo.AssertNotCalled(t, "Save")
}

func TestScanFoodRejectsBadUploads(t *testing.T) {
	tests := []struct {
		name           string
		request        func(t *testing.T) *http.Request
		maxUpload      int64
		setupMock      func(*mocks.MockSessionRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "missing image field",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "photo", pngBytes(t, 10, 10))
			},
			maxUpload:      1 << 20,
			setupMock:      func(m *mocks.MockSessionRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Image is required",
		},
		{
			name: "not an image",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image", []byte("just some text, definitely not a photo"))
			},
			maxUpload: 1 << 20,
			setupMock: func(m *mocks.MockSessionRepository) {
				m.On("FindByID", testSessionID).Return(sessionFixture(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid image",
		},
		{
			name: "too large",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image", pngBytes(t, 64, 64))
			},
			maxUpload:      16,
			setupMock:      func(m *mocks.MockSessionRepository) {},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedMsg:    "Image too large",
		},
		{
			name: "body over the limit is cut off while parsing",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image", bytes.Repeat([]byte{0xff}, 256<<10))
			},
			maxUpload:      16,
			setupMock:      func(m *mocks.MockSessionRepository) {},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedMsg:    "Image too large",
		},
		{
			name: "dimensions too large to decode",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image", hugePNGHeader())
			},
			maxUpload: 1 << 20,
			setupMock: func(m *mocks.MockSessionRepository) {
				m.On("FindByID", testSessionID).Return(sessionFixture(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockSessionRepository)
			tt.setupMock(mockRepo)
			controller := controllers.NewScanController(mockRepo, &stubDetector{}, tt.maxUpload)

			w, response := serveScan(t, controller, tt.request(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, response["message"])
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestScanFoodDetectorFailure(t *testing.T) {
	mockRepo := new(mocks.MockSessionRepository)
	mockRepo.On("FindByID", testSessionID).Return(sessionFixture(), nil)
	controller := controllers.NewScanController(mockRepo, &stubDetector{err: errors.New("model offline")}, 0)

	w, response := serveScan(t, controller, multipartRequest(t, "image", pngBytes(t, 10, 10)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to scan image", response["message"])
}

