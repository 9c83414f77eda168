package models

// Part is one element of the content sent upstream for a turn
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

// TextPart creates a text part
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart creates an inline data part
func BlobPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// IsBlob reports whether the part carries inline data
func (p Part) IsBlob() bool {
	return p.Data != nil
}
