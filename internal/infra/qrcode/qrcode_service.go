// Package qrcode renders share QR codes for stories.
package qrcode

import (
	"strings"

	"atlas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	shareBaseURL         string
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(size int, errorCorrectionLevel, shareBaseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		shareBaseURL:         strings.TrimSuffix(shareBaseURL, "/"),
	}
}

// GenerateStoryQR renders a PNG QR code pointing at the story share URL.
func (s *qrcodeService) GenerateStoryQR(storyID uuid.UUID) ([]byte, error) {
	shareURL := s.shareBaseURL + "/stories/" + storyID.String()

	png, err := qrcode.Encode(shareURL, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode story QR code")
	}

	return png, nil
}
