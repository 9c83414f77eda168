// Package ingest turns uploaded files into context for the next chat turn.
//
// The file extension selects the parser; each parser delegates to a library
// (or, for the zip-packaged Office formats, to the archive itself) and
// returns either extracted text or, for images, the raw bytes.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// DefaultMaxFileSize caps uploads at 20MB
const DefaultMaxFileSize = 20 * 1024 * 1024

var (
	errEmptyFile = errors.New("file is empty")
	errNoText    = errors.New("no text could be extracted")
)

var kindsByExt = map[string]models.Kind{
	".png":  models.KindImage,
	".jpg":  models.KindImage,
	".jpeg": models.KindImage,
	".pdf":  models.KindPDF,
	".docx": models.KindDOCX,
	".pptx": models.KindPPTX,
	".xlsx": models.KindXLSX,
}

// Document is a file read into memory, ready for an Extractor
type Document struct {
	Name string
	Kind models.Kind
	Data []byte
}

// Extractor converts a document of a supported kind into an attachment
type Extractor interface {
	Supports(kind models.Kind) bool
	Extract(doc *Document) (*models.Attachment, error)
}

// KindFromName detects the file kind from its extension
func KindFromName(name string) (models.Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	kind, ok := kindsByExt[ext]
	if !ok {
		return "", apierrors.NewUnsupportedFileError(filepath.Base(name), ext)
	}
	return kind, nil
}

// SupportedExtensions returns the accepted extensions, sorted
func SupportedExtensions() []string {
	exts := make([]string, 0, len(kindsByExt))
	for ext := range kindsByExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// DefaultExtractors returns one extractor per supported kind
func DefaultExtractors() []Extractor {
	return []Extractor{
		ImageExtractor{},
		PDFExtractor{},
		DOCXExtractor{},
		PPTXExtractor{},
		XLSXExtractor{},
	}
}

// Processor dispatches uploads to the matching extractor
type Processor struct {
	maxSize    int64
	extractors []Extractor
	logger     *zap.Logger
}

// Option configures a Processor
type Option func(*Processor)

// WithMaxSize sets the upload size cap in bytes; 0 disables the cap
func WithMaxSize(n int64) Option {
	return func(p *Processor) {
		p.maxSize = n
	}
}

// WithExtractor registers an extractor ahead of the defaults
func WithExtractor(e Extractor) Option {
	return func(p *Processor) {
		p.extractors = append([]Extractor{e}, p.extractors...)
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates a Processor with the default extractors
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		maxSize:    DefaultMaxFileSize,
		extractors: DefaultExtractors(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessFile reads and extracts a file from disk
func (p *Processor) ProcessFile(path string) (*models.Attachment, error) {
	// Reject by extension before touching the file
	if _, err := KindFromName(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if p.maxSize > 0 && info.Size() > p.maxSize {
		return nil, apierrors.NewFileTooLargeError(filepath.Base(path), info.Size(), p.maxSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Process(filepath.Base(path), f)
}

// Process reads r fully and extracts it according to name's extension
func (p *Processor) Process(name string, r io.Reader) (*models.Attachment, error) {
	kind, err := KindFromName(name)
	if err != nil {
		return nil, err
	}
	name = filepath.Base(name)

	reader := r
	if p.maxSize > 0 {
		reader = io.LimitReader(r, p.maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if p.maxSize > 0 && int64(len(data)) > p.maxSize {
		return nil, apierrors.NewFileTooLargeError(name, 0, p.maxSize)
	}
	if len(data) == 0 {
		return nil, apierrors.NewExtractError(string(kind), name, errEmptyFile)
	}

	extractor := p.extractorFor(kind)
	if extractor == nil {
		return nil, apierrors.NewUnsupportedFileError(name, strings.ToLower(filepath.Ext(name)))
	}

	att, err := extractor.Extract(&Document{Name: name, Kind: kind, Data: data})
	if err != nil {
		p.logger.Warn("extraction failed",
			zap.String("file", name),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return nil, apierrors.NewExtractError(string(kind), name, err)
	}

	att.Name = name
	att.Kind = kind
	att.Size = int64(len(data))

	// Scanned PDFs and empty documents extract to nothing
	if !att.HasContent() {
		p.logger.Warn("extraction produced no content",
			zap.String("file", name),
			zap.String("kind", string(kind)),
		)
		return nil, apierrors.NewExtractError(string(kind), name, errNoText)
	}

	p.logger.Info("file processed",
		zap.String("file", name),
		zap.String("kind", string(kind)),
		zap.Int64("bytes", att.Size),
		zap.Int("text_len", len(att.Text)),
	)
	return att, nil
}

func (p *Processor) extractorFor(kind models.Kind) Extractor {
	for _, e := range p.extractors {
		if e.Supports(kind) {
			return e
		}
	}
	return nil
}
