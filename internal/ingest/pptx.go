package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// PPTXExtractor emits the text of every text-bearing shape, slide by slide.
// Each shape's text is followed by a newline.
type PPTXExtractor struct{}

func (PPTXExtractor) Supports(kind models.Kind) bool {
	return kind == models.KindPPTX
}

func (PPTXExtractor) Extract(doc *Document) (*models.Attachment, error) {
	zr, err := openPackage(doc.Data)
	if err != nil {
		return nil, err
	}

	slides, err := slideOrder(zr)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for i, name := range slides {
		raw, err := readPart(zr, name)
		if err != nil {
			return nil, err
		}
		shapes, err := slideShapeTexts(raw)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		for _, text := range shapes {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return &models.Attachment{
		MIMEType: pptxMIME,
		Text:     sb.String(),
	}, nil
}

// presentation.xml, reduced to the slide list
type presentationPart struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationshipsPart struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// slideOrder returns the slide part names in deck order.
// Deck order is p:sldIdLst resolved through the presentation rels; part
// names keep their creation number when slides are moved. Packages without a
// usable slide list fall back to the number in the part name.
func slideOrder(zr *zip.Reader) ([]string, error) {
	if names := deckOrder(zr); len(names) > 0 {
		return names, nil
	}

	type slidePart struct {
		num  int
		name string
	}
	var slides []slidePart
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		slides = append(slides, slidePart{num: n, name: f.Name})
	}
	if len(slides) == 0 {
		return nil, errors.New("presentation has no slides")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	names := make([]string, len(slides))
	for i, s := range slides {
		names[i] = s.name
	}
	return names, nil
}

// deckOrder reads the slide list, or returns nil when it cannot be resolved
func deckOrder(zr *zip.Reader) []string {
	raw, err := readPart(zr, "ppt/presentation.xml")
	if err != nil {
		return nil
	}
	var pres presentationPart
	if err := xml.Unmarshal(raw, &pres); err != nil || len(pres.SlideIDs) == 0 {
		return nil
	}

	raw, err = readPart(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil
	}
	var rels relationshipsPart
	if err := xml.Unmarshal(raw, &rels); err != nil {
		return nil
	}
	targets := make(map[string]string, len(rels.Relationships))
	for _, r := range rels.Relationships {
		targets[r.ID] = r.Target
	}

	parts := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = true
	}

	names := make([]string, 0, len(pres.SlideIDs))
	for _, id := range pres.SlideIDs {
		target, ok := targets[id.RelID]
		if !ok {
			return nil
		}
		name := strings.TrimPrefix(target, "/")
		if !strings.HasPrefix(target, "/") {
			name = path.Join("ppt", target)
		}
		if !parts[name] {
			return nil
		}
		names = append(names, name)
	}
	return names
}

// slideShapeTexts returns the text of each p:sp that owns a text body
func slideShapeTexts(raw []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	c := &textCollector{textNS: nsDrawing}

	var (
		shapes  []string
		inShape bool
		hasBody bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid slide xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == nsPresentation {
				switch t.Name.Local {
				case "sp":
					inShape, hasBody = true, false
					c.take()
				case "txBody":
					hasBody = inShape
				}
			}
			if inShape {
				c.start(t)
			}
		case xml.EndElement:
			if inShape {
				c.end(t)
			}
			if t.Name.Space == nsPresentation && t.Name.Local == "sp" {
				paragraphs := c.take()
				if hasBody {
					shapes = append(shapes, strings.Join(paragraphs, "\n"))
				}
				inShape, hasBody = false, false
			}
		case xml.CharData:
			if inShape {
				c.chars(t)
			}
		}
	}
	return shapes, nil
}
