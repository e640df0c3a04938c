package service

import "github.com/google/uuid"

// QRCodeService generates share QR codes for stories.
type QRCodeService interface {
	// GenerateStoryQR renders a PNG QR code pointing at the public share
	// URL of the given story.
	GenerateStoryQR(storyID uuid.UUID) ([]byte, error)
}
