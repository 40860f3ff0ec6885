// Package ingest turns uploaded files and linked pages into embeddable
// text chunks plus a source descriptor for provenance.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/pkg/utils"
)

// Result is the output of a single ingestion: the descriptor recorded on
// the session and the chunks handed to the vector store.
type Result struct {
	Source entity.SourceDescriptor
	Chunks []entity.DocumentChunk
}

type Ingestor interface {
	IngestDocument(ctx context.Context, filename string, data []byte) (*Result, error)
	IngestURL(ctx context.Context, url string) (*Result, error)
}

// Router dispatches on file extension: PDFs go through the PDF
// extractor, raster images through the vision describer, everything else
// is treated as plain text. URLs go through the web extractor.
type Router struct {
	web       *WebExtractor
	pdf       *PDFExtractor
	image     *ImageDescriber
	chunkSize int
	overlap   int
	logger    logger.ILogger
}

func NewRouter(web *WebExtractor, pdf *PDFExtractor, image *ImageDescriber, chunkSize, overlap int, log logger.ILogger) *Router {
	return &Router{
		web:       web,
		pdf:       pdf,
		image:     image,
		chunkSize: chunkSize,
		overlap:   overlap,
		logger:    log,
	}
}

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
}

func (r *Router) IngestDocument(ctx context.Context, filename string, data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ingest: empty file %q", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	var (
		text       string
		sourceType string
		err        error
	)

	switch {
	case ext == ".pdf":
		sourceType = constant.SourceTypeDocument
		text, err = r.pdf.Extract(data)
	case isImageExtension(ext):
		sourceType = constant.SourceTypeImage
		text, err = r.image.Describe(ctx, ext, data)
	default:
		sourceType = constant.SourceTypeDocument
		text = string(data)
	}
	if err != nil {
		return nil, fmt.Errorf("ingest %q: %w", filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ingest %q: no extractable text", filename)
	}

	r.logger.Debug("ingest", "Extracted document text", map[string]interface{}{
		"filename": filename,
		"type":     sourceType,
		"length":   len(text),
	})
	return r.buildResult(sourceType, filename, "", text), nil
}

func (r *Router) IngestURL(ctx context.Context, url string) (*Result, error) {
	text, title, err := r.web.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("ingest url %q: %w", url, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ingest url %q: no extractable text", url)
	}
	if title == "" {
		title = url
	}

	r.logger.Debug("ingest", "Extracted page text", map[string]interface{}{
		"url":    url,
		"title":  title,
		"length": len(text),
	})
	return r.buildResult(constant.SourceTypeWeb, title, url, text), nil
}

func (r *Router) buildResult(sourceType, name, url, text string) *Result {
	pieces := utils.SplitText(text, r.chunkSize, r.overlap)
	chunks := make([]entity.DocumentChunk, len(pieces))
	for i, p := range pieces {
		chunks[i] = entity.DocumentChunk{
			SourceType: sourceType,
			SourceName: name,
			Url:        url,
			Content:    p,
		}
	}
	return &Result{
		Source: entity.NewSourceDescriptor(sourceType, name, url, text),
		Chunks: chunks,
	}
}

func isImageExtension(ext string) bool {
	_, ok := imageExtensions[ext]
	return ok
}
