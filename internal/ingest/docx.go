package ingest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DOCXExtractor joins the document's paragraphs with newlines
type DOCXExtractor struct{}

func (DOCXExtractor) Supports(kind models.Kind) bool {
	return kind == models.KindDOCX
}

func (DOCXExtractor) Extract(doc *Document) (*models.Attachment, error) {
	zr, err := openPackage(doc.Data)
	if err != nil {
		return nil, err
	}
	body, err := readPart(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}

	paragraphs, err := docxParagraphs(body)
	if err != nil {
		return nil, err
	}

	return &models.Attachment{
		MIMEType: docxMIME,
		Text:     strings.Join(paragraphs, "\n"),
	}, nil
}

// docxParagraphs returns every w:p in document order, tables included
func docxParagraphs(body []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	c := &textCollector{textNS: nsWordprocessing}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			c.start(t)
		case xml.EndElement:
			c.end(t)
		case xml.CharData:
			c.chars(t)
		}
	}
	return c.take(), nil
}
