package models

import (
	"fmt"
	"strings"
)

// Kind is the detected type tag of an uploaded file
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
	KindDOCX  Kind = "docx"
	KindPPTX  Kind = "pptx"
	KindXLSX  Kind = "xlsx"
)

// Attachment is the uploaded file context for the next question.
// Images carry Data; every other kind carries extracted Text.
type Attachment struct {
	Name     string
	Kind     Kind
	MIMEType string
	Size     int64
	Text     string
	Data     []byte

	// Width and Height are set for images
	Width  int
	Height int
}

// IsImage reports whether the attachment is passed as raw bytes
func (a *Attachment) IsImage() bool {
	return a != nil && a.Kind == KindImage
}

// HasContent reports whether the attachment carries anything to send:
// image bytes, or non-blank extracted text
func (a *Attachment) HasContent() bool {
	if a == nil {
		return false
	}
	if a.IsImage() {
		return len(a.Data) > 0
	}
	return strings.TrimSpace(a.Text) != ""
}

// Part converts the attachment content into a prompt part
func (a *Attachment) Part() Part {
	if a.IsImage() {
		return BlobPart(a.MIMEType, a.Data)
	}
	return TextPart(a.Text)
}

// Summary returns a one-line description for status displays
func (a *Attachment) Summary() string {
	if a == nil {
		return ""
	}
	if a.IsImage() {
		if a.Width > 0 && a.Height > 0 {
			return fmt.Sprintf("%s (%s, %dx%d)", a.Name, a.MIMEType, a.Width, a.Height)
		}
		return fmt.Sprintf("%s (%s)", a.Name, a.MIMEType)
	}
	return fmt.Sprintf("%s (%s, %d chars)", a.Name, a.Kind, len([]rune(a.Text)))
}
