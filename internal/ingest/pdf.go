package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// PDFExtractor extracts the plain text of every page
type PDFExtractor struct{}

func (PDFExtractor) Supports(kind models.Kind) bool {
	return kind == models.KindPDF
}

func (PDFExtractor) Extract(doc *Document) (att *models.Attachment, err error) {
	// ledongthuc/pdf panics on some malformed objects
	defer func() {
		if r := recover(); r != nil {
			att = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	rdr, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return nil, err
	}

	n := rdr.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pg := rdr.Page(i)
		if pg.V.IsNull() {
			continue
		}
		txt, err := pg.GetPlainText(nil)
		if err != nil {
			// Image-only or broken page
			continue
		}
		pages = append(pages, txt)
	}

	return &models.Attachment{
		MIMEType: "application/pdf",
		Text:     strings.Join(pages, "\n"),
	}, nil
}
