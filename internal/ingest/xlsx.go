package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XLSXExtractor renders every sheet as pipe-separated rows under a sheet header
type XLSXExtractor struct{}

func (XLSXExtractor) Supports(kind models.Kind) bool {
	return kind == models.KindXLSX
}

func (XLSXExtractor) Extract(doc *Document) (*models.Attachment, error) {
	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		sb.WriteString(fmt.Sprintf("--- Sheet: %s ---\n", sheet))

		// excelize trims trailing empty cells; pad to the widest row
		width := 0
		for _, row := range rows {
			if len(row) > width {
				width = len(row)
			}
		}
		for _, row := range rows {
			cells := make([]string, width)
			copy(cells, row)
			sb.WriteString(strings.Join(cells, " | "))
			sb.WriteString("\n")
		}
	}

	return &models.Attachment{
		MIMEType: xlsxMIME,
		Text:     sb.String(),
	}, nil
}
