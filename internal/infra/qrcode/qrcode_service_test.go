package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"lastseen/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	svc := NewQRCodeService(&config.Config{Share: &config.ShareConfig{BaseURL: "https://lastseen.example/"}})

	assert.Equal(t, "https://lastseen.example/s/abc_DEF-123", svc.ShareURL("abc_DEF-123"))
	assert.Equal(t, "https://lastseen.example/s/a%2Fb", svc.ShareURL("a/b"))
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	svc := newQRCodeService("https://lastseen.example", 200, "M")

	qrBytes, err := svc.GenerateShareQR("abc_DEF-123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_GenerateShareQR_EmptyToken(t *testing.T) {
	svc := newQRCodeService("https://lastseen.example", 200, "M")

	_, err := svc.GenerateShareQR("")
	assert.Error(t, err)
}
