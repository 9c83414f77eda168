package api

import (
	"bytes"
	"testing"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

func TestBuildPrompt_NoAttachment(t *testing.T) {
	parts := BuildPrompt("SYS", nil, "  what is this?  ")

	want := []string{"SYS", QuestionHeader, "  what is this?  "}
	if len(parts) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(parts))
	}
	for i, w := range want {
		if parts[i].IsBlob() || parts[i].Text != w {
			t.Errorf("part %d = %+v, want text %q", i, parts[i], w)
		}
	}
}

func TestBuildPrompt_WithAttachment(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	tests := []struct {
		name string
		att  *models.Attachment
		want models.Part
	}{
		{"pdf", &models.Attachment{Name: "a.pdf", Kind: models.KindPDF, Text: "page one\npage two"}, models.TextPart("page one\npage two")},
		{"docx", &models.Attachment{Name: "a.docx", Kind: models.KindDOCX, Text: "para"}, models.TextPart("para")},
		{"pptx", &models.Attachment{Name: "a.pptx", Kind: models.KindPPTX, Text: "Title\n"}, models.TextPart("Title\n")},
		{"xlsx", &models.Attachment{Name: "a.xlsx", Kind: models.KindXLSX, Text: "--- Sheet: S ---\na | b\n"}, models.TextPart("--- Sheet: S ---\na | b\n")},
		{"image", &models.Attachment{Name: "a.png", Kind: models.KindImage, MIMEType: "image/png", Data: png}, models.BlobPart("image/png", png)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := BuildPrompt(DefaultSystemPrompt, tt.att, "Q")

			if len(parts) != 5 {
				t.Fatalf("expected 5 parts, got %d", len(parts))
			}
			if parts[0].Text != DefaultSystemPrompt {
				t.Error("first part must be the system instruction")
			}
			if parts[1].Text != ContextHeader {
				t.Errorf("part 1 = %q, want context header", parts[1].Text)
			}

			got := parts[2]
			if got.Text != tt.want.Text || got.MIMEType != tt.want.MIMEType || !bytes.Equal(got.Data, tt.want.Data) {
				t.Errorf("content part = %+v, want %+v", got, tt.want)
			}
			if parts[3].Text != QuestionHeader || parts[4].Text != "Q" {
				t.Errorf("question parts = %q, %q", parts[3].Text, parts[4].Text)
			}
		})
	}
}

func TestBuildPrompt_EmptyAttachmentSkipped(t *testing.T) {
	tests := []*models.Attachment{
		{Name: "scan.pdf", Kind: models.KindPDF},
		{Name: "blank.docx", Kind: models.KindDOCX, Text: "  \n "},
		{Name: "a.png", Kind: models.KindImage, MIMEType: "image/png"},
	}

	for _, att := range tests {
		parts := BuildPrompt("SYS", att, "Q")
		if len(parts) != 3 {
			t.Fatalf("%s: expected 3 parts, got %d", att.Name, len(parts))
		}
		for _, p := range parts {
			if p.Text == ContextHeader {
				t.Errorf("%s: empty attachment must not add a context block", att.Name)
			}
		}
	}
}
