package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Namespaces of the Office Open XML parts read by the extractors
const (
	nsWordprocessing = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsPresentation   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawing        = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

func openPackage(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not an Office Open XML package: %w", err)
	}
	return zr, nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("package has no %s part", name)
}

// textCollector accumulates paragraph text while walking a part.
// Only character data inside a run text element is kept. Property
// subtrees (pPr, rPr, endParaRPr, ...) are skipped whole: their tab
// elements are tab stops, not characters.
type textCollector struct {
	textNS     string
	paragraphs []string
	current    strings.Builder
	depth      int
	skip       int
	inText     bool
}

func isProperties(name xml.Name) bool {
	return strings.HasSuffix(name.Local, "Pr")
}

// start handles an element open
func (c *textCollector) start(el xml.StartElement) {
	if c.skip > 0 {
		c.skip++
		return
	}
	if el.Name.Space != c.textNS {
		return
	}
	if isProperties(el.Name) {
		c.skip = 1
		return
	}
	switch el.Name.Local {
	case "p":
		if c.depth == 0 {
			c.current.Reset()
		}
		c.depth++
	case "t":
		c.inText = c.depth > 0
	case "tab":
		if c.depth > 0 {
			c.current.WriteByte('\t')
		}
	case "br", "cr":
		if c.depth > 0 {
			c.current.WriteByte('\n')
		}
	}
}

func (c *textCollector) end(el xml.EndElement) {
	if c.skip > 0 {
		c.skip--
		return
	}
	if el.Name.Space != c.textNS {
		return
	}
	switch el.Name.Local {
	case "p":
		if c.depth == 0 {
			return
		}
		c.depth--
		if c.depth == 0 {
			c.paragraphs = append(c.paragraphs, c.current.String())
		}
	case "t":
		c.inText = false
	}
}

func (c *textCollector) chars(data xml.CharData) {
	if c.inText {
		c.current.Write(data)
	}
}

// take returns the collected paragraphs and resets the collector
func (c *textCollector) take() []string {
	out := c.paragraphs
	c.paragraphs = nil
	c.skip = 0
	return out
}
