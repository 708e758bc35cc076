// Package photo normalises the friend's photo into a PNG data URI that the
// card renderer can embed directly.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"birthday-twins/internal/logger"
)

const (
	// MaxDimension 은 긴 변의 최대 픽셀 수다.
	MaxDimension = 512
	// MaxBytes 는 디코딩 전 원본 크기 제한이다.
	MaxBytes = 8 << 20
	// MaxSourceSide, MaxSourcePixels 는 디코딩 전에 헤더만 보고 거르는 원본 픽셀 한도다.
	// 압축률이 높은 PNG/GIF 는 작은 파일로도 거대한 비트맵을 만들 수 있다.
	MaxSourceSide   = 8000
	MaxSourcePixels = 40_000_000
)

var (
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrTooLarge         = errors.New("image is too large")
	ErrInvalidDataURI   = errors.New("invalid data uri")
)

// Normalize 는 업로드된 이미지를 읽어 PNG data URI 로 바꾼다.
func Normalize(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(data) > MaxBytes {
		return "", ErrTooLarge
	}
	return normalizeBytes(data)
}

// NormalizeDataURI 는 "data:image/...;base64,..." 형태만 받는다.
func NormalizeDataURI(uri string) (string, error) {
	data, err := decodeDataURI(uri)
	if err != nil {
		return "", err
	}
	if len(data) > MaxBytes {
		return "", ErrTooLarge
	}
	return normalizeBytes(data)
}

func decodeDataURI(uri string) ([]byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrInvalidDataURI
	}
	if !strings.HasPrefix(meta, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, strings.TrimSuffix(meta, ";base64"))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return data, nil
}

func normalizeBytes(data []byte) (string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}
	if cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide || cfg.Width*cfg.Height > MaxSourcePixels {
		return "", fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	w, h := fitWithin(bounds.Dx(), bounds.Dy(), MaxDimension)
	if w != bounds.Dx() || h != bounds.Dy() {
		resized := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	logger.DebugWithFields("friend photo normalised", logger.Fields{
		"format":      format,
		"orig_width":  bounds.Dx(),
		"orig_height": bounds.Dy(),
		"width":       w,
		"height":      h,
		"bytes":       buf.Len(),
	})

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fitWithin 은 비율을 유지하며 긴 변이 limit 이하가 되는 크기를 돌려준다. 확대는 하지 않는다.
func fitWithin(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(h*limit/w, 1)
	}
	return max(w*limit/h, 1), limit
}
