package detection

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthya/internal/models"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestRandomDetectorProperties(t *testing.T) {
	d := NewRandomDetector(seeded(42))
	perPiece := map[string]Recognizable{}
	for _, r := range DefaultTable {
		perPiece[r.Name] = r
	}

	for i := 0; i < 200; i++ {
		foods, err := d.Detect(context.Background(), nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(foods), 1)
		require.LessOrEqual(t, len(foods), 3)

		seen := map[string]bool{}
		for _, f := range foods {
			assert.False(t, seen[f.Name], "duplicate %s", f.Name)
			seen[f.Name] = true
			assert.GreaterOrEqual(t, f.Confidence, 0.70)
			assert.LessOrEqual(t, f.Confidence, 0.95)

			entry := perPiece[f.Name]
			if entry.PerPiece > 0 {
				assert.GreaterOrEqual(t, f.Quantity, entry.MinPieces)
				assert.LessOrEqual(t, f.Quantity, entry.MaxPieces)
				assert.Equal(t, entry.PerPiece*f.Quantity, f.Calories)
			} else {
				assert.Equal(t, 1, f.Quantity)
				assert.Equal(t, "1 serving", f.ServingInfo)
			}
		}
	}
}

func TestRandomDetectorIsDeterministicForSeed(t *testing.T) {
	a, err := NewRandomDetector(seeded(7)).Detect(context.Background(), nil)
	require.NoError(t, err)
	b, err := NewRandomDetector(seeded(7)).Detect(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomDetectorServingValues(t *testing.T) {
	tests := []struct {
		item     Recognizable
		calories int
	}{
		{Recognizable{Name: "Dal Bhat", PerServing: 420}, 420},
		{Recognizable{Name: "Chatamari"}, 200},
	}

	for _, tt := range tests {
		d := NewRandomDetector(seeded(1), tt.item)
		foods, err := d.Detect(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, foods, 1, "a one-entry table yields one detection")
		assert.Equal(t, tt.calories, foods[0].Calories)
	}
}

func TestRandomDetectorHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRandomDetector(seeded(1)).Detect(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeNutrition(t *testing.T) {
	dal := AnalyzeNutrition([]DetectedFood{{Name: "Dal Bhat", Calories: 420}})
	assert.Equal(t, 420, dal.TotalCalories)
	assert.Equal(t, 12.6, dal.Protein)
	assert.Equal(t, 68.3, dal.Carbohydrates)
	assert.Equal(t, 3.7, dal.Fat)

	momo := AnalyzeNutrition([]DetectedFood{{Name: "Momo", Calories: 220}})
	assert.Equal(t, 9.9, momo.Protein)
	assert.Equal(t, 15.4, momo.Carbohydrates)
	assert.Equal(t, 3.9, momo.Fat)

	other := AnalyzeNutrition([]DetectedFood{{Name: "Chatamari", Calories: 200}})
	assert.Equal(t, 5.0, other.Protein)
	assert.Equal(t, 30.0, other.Carbohydrates)
	assert.Equal(t, 2.2, other.Fat)

	both := AnalyzeNutrition([]DetectedFood{{Name: "Dal Bhat", Calories: 420}, {Name: "Momo", Calories: 220}})
	assert.Equal(t, 640, both.TotalCalories)
	assert.InDelta(t, 22.5, both.Protein, 0.05)

	assert.Zero(t, AnalyzeNutrition(nil))
}

func TestRecommendations(t *testing.T) {
	foods := []DetectedFood{{Name: "Dal Bhat"}, {Name: "Sel Roti"}}

	assert.Equal(t, []string{balancedAdvice}, Recommendations(foods, []models.HealthCondition{models.ConditionNone}))
	assert.Equal(t, []string{balancedAdvice}, Recommendations([]DetectedFood{{Name: "Momo"}}, []models.HealthCondition{models.ConditionDiabetes}))

	diabetes := Recommendations(foods, []models.HealthCondition{models.ConditionDiabetes})
	assert.Equal(t, []string{
		"Consider brown rice instead of white rice for better blood sugar control",
		"Limit sweet items like Sel Roti due to high sugar content",
	}, diabetes)

	mixed := Recommendations(foods, []models.HealthCondition{"Hypertension", "Heart Disease"})
	assert.Len(t, mixed, 4)
	assert.Equal(t, "Include more vegetables in your Dal Bhat", mixed[3])
}

type stubDetector struct {
	foods []DetectedFood
	err   error
	width int
}

func (s *stubDetector) Detect(_ context.Context, img image.Image) ([]DetectedFood, error) {
	s.width = img.Bounds().Dx()
	return s.foods, s.err
}

func TestAnalyzePreprocessesAndCombines(t *testing.T) {
	stub := &stubDetector{foods: []DetectedFood{{Name: "Gundruk Soup", Calories: 120, Quantity: 1}}}
	img := image.NewRGBA(image.Rect(0, 0, 1280, 960))

	res, err := Analyze(context.Background(), stub, img, []models.HealthCondition{models.ConditionHypertension})
	require.NoError(t, err)
	assert.Equal(t, 640, stub.width)
	assert.Equal(t, 120, res.Nutrition.TotalCalories)
	assert.Equal(t, 6.0, res.Nutrition.Protein)
	assert.Len(t, res.Recommendations, 2)

	stub.err = errors.New("model offline")
	_, err = Analyze(context.Background(), stub, img, nil)
	assert.EqualError(t, err, "model offline")
}

func encode(t *testing.T, w, h int, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	pngData := encode(t, 1280, 480, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
	img, mime, err := DecodeImage(bytes.NewReader(pngData))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, 1280, img.Bounds().Dx())

	jpegData := encode(t, 320, 240, func(b *bytes.Buffer, i image.Image) error { return jpeg.Encode(b, i, nil) })
	_, mime, err = DecodeImage(bytes.NewReader(jpegData))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
}

func TestDecodeImageRejectsOtherFormats(t *testing.T) {
	_, _, err := DecodeImage(bytes.NewReader([]byte("definitely not a photo")))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	gifData := encode(t, 10, 10, func(b *bytes.Buffer, i image.Image) error { return gif.Encode(b, i, nil) })
	_, mime, err := DecodeImage(bytes.NewReader(gifData))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Equal(t, "image/gif", mime)

	truncated := encode(t, 64, 64, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })[:40]
	_, _, err = DecodeImage(bytes.NewReader(truncated))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// pngHeader is a PNG signature and IHDR chunk declaring a w x h grayscale
// image, with no pixel data after it.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 17)
	copy(ihdr, "IHDR")
	binary.BigEndian.PutUint32(ihdr[4:], w)
	binary.BigEndian.PutUint32(ihdr[8:], h)
	ihdr[12] = 8 // bit depth; color type, compression, filter and interlace stay 0

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(13))
	buf.Write(ihdr)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(ihdr))
	return buf.Bytes()
}

func TestDecodeImageRejectsHugeDimensions(t *testing.T) {
	for _, side := range []uint32{12000, 40000} {
		_, mime, err := DecodeImage(bytes.NewReader(pngHeader(side, side)))
		assert.ErrorIs(t, err, ErrUnsupportedImage)
		assert.ErrorContains(t, err, "exceeds")
		assert.Equal(t, "image/png", mime)
	}

	// Exactly at the limit the header is accepted; decoding then fails only
	// because there is no pixel data.
	_, _, err := DecodeImage(bytes.NewReader(pngHeader(8000, 5000)))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.NotContains(t, err.Error(), "exceeds")
}

func TestPreprocess(t *testing.T) {
	wide := Preprocess(image.NewRGBA(image.Rect(0, 0, 1280, 480)))
	assert.Equal(t, image.Rect(0, 0, 640, 240), wide.Bounds())

	small := image.NewRGBA(image.Rect(0, 0, 300, 200))
	assert.Same(t, small, Preprocess(small))
}
