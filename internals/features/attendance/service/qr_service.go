package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// NewSessionToken genera el token opaco que viaja dentro del QR.
func NewSessionToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token de sesión: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RenderQRPNG codifica el token como PNG listo para proyectar en clase.
func RenderQRPNG(token string, size int) ([]byte, error) {
	if size <= 0 {
		size = 512
	}
	png, err := qrcode.Encode(token, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("codificar QR: %w", err)
	}
	return png, nil
}
