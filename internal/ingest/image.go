package ingest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// ImageExtractor passes PNG and JPEG bytes through untouched
type ImageExtractor struct{}

func (ImageExtractor) Supports(kind models.Kind) bool {
	return kind == models.KindImage
}

func (ImageExtractor) Extract(doc *Document) (*models.Attachment, error) {
	mt := mimetype.Detect(doc.Data)
	if !mt.Is("image/png") && !mt.Is("image/jpeg") {
		return nil, fmt.Errorf("content is %s, not a PNG or JPEG image", mt.String())
	}

	// Header only; the pixels are never decoded
	cfg, _, err := image.DecodeConfig(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("corrupt image: %w", err)
	}

	return &models.Attachment{
		MIMEType: mt.String(),
		Data:     doc.Data,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
