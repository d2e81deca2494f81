// Package qrcode renders public share links as PNG QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"lastseen/config"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"

	"github.com/skip2/go-qrcode"
)

// SharePathPrefix is the public route a share token is appended to.
const SharePathPrefix = "/s/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates the share QR renderer from the share config.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	share := cfg.Share
	if share == nil {
		share = &config.ShareConfig{}
	}

	return newQRCodeService(share.BaseURL, share.QRSize, share.QRLevel)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShareURL builds the public link, escaping the token as a path segment.
func (s *qrcodeService) ShareURL(token string) string {
	return s.baseURL + SharePathPrefix + url.PathEscape(token)
}

// GenerateShareQR returns a PNG encoding the share link.
func (s *qrcodeService) GenerateShareQR(token string) ([]byte, error) {
	if token == "" {
		return nil, errors.New("share token is empty")
	}

	qrCode, err := qrcode.New(s.ShareURL(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
