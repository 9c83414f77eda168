package models

import (
	"bytes"
	"testing"
)

func TestAllModels(t *testing.T) {
	models := AllModels()

	if len(models) == 0 {
		t.Error("Expected at least one model")
	}

	for _, model := range models {
		if model.Name == "" {
			t.Error("Model name should not be empty")
		}
		if !model.IsKnown() {
			t.Errorf("Model %s should be known", model.Name)
		}
	}
}

func TestModelFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "gemini-1.5-flash"},
		{"fast", "gemini-1.5-flash"},
		{"pro", "gemini-1.5-pro"},
		{"flash-2", "gemini-2.0-flash"},
		{"thinking", "gemini-2.5-flash"},
		{"gemini-2.5-pro", "gemini-2.5-pro"},
		{"GEMINI-2.5-PRO", "gemini-2.5-pro"},
		{"gemini-exp-1206", "gemini-exp-1206"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := ModelFromName(tt.name)
			if model.Name != tt.expected {
				t.Errorf("ModelFromName(%q) = %v, want %v", tt.name, model.Name, tt.expected)
			}
		})
	}

	if ModelFromName("gemini-exp-1206").IsKnown() {
		t.Error("pass-through model should not be reported as known")
	}
}

func TestAttachmentPart(t *testing.T) {
	img := &Attachment{Name: "cat.png", Kind: KindImage, MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	part := img.Part()
	if !part.IsBlob() {
		t.Fatal("image attachment should produce a blob part")
	}
	if part.MIMEType != "image/png" || !bytes.Equal(part.Data, img.Data) {
		t.Errorf("unexpected blob part: %+v", part)
	}

	doc := &Attachment{Name: "a.pdf", Kind: KindPDF, Text: "hello"}
	part = doc.Part()
	if part.IsBlob() {
		t.Fatal("text attachment should produce a text part")
	}
	if part.Text != "hello" {
		t.Errorf("Text = %q, want hello", part.Text)
	}
}

func TestAttachmentSummary(t *testing.T) {
	var nilAtt *Attachment
	if nilAtt.Summary() != "" {
		t.Error("nil attachment should have empty summary")
	}
	if nilAtt.IsImage() {
		t.Error("nil attachment is not an image")
	}

	img := &Attachment{Name: "cat.png", Kind: KindImage, MIMEType: "image/png", Width: 640, Height: 480}
	if got := img.Summary(); got != "cat.png (image/png, 640x480)" {
		t.Errorf("Summary() = %q", got)
	}

	doc := &Attachment{Name: "notes.docx", Kind: KindDOCX, Text: "héllo"}
	if got := doc.Summary(); got != "notes.docx (docx, 5 chars)" {
		t.Errorf("Summary() = %q", got)
	}
}
