package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is a good balance for web display and smartphone scanning.
const DefaultSize = 256

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("qrcode content is empty")
	// ErrInvalidSize is returned for non-positive pixel sizes.
	ErrInvalidSize = errors.New("qrcode size must be positive")
)

// Generate encodes content as a PNG QR code of size x size pixels using
// medium error correction.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qrcode: %w", err)
	}
	return png, nil
}

// GenerateBase64Image encodes content as a base64 data URI suitable for
// direct embedding in an <img> tag.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
