package imaging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/joseph-ayodele/claims-extract/constants"
	"github.com/joseph-ayodele/claims-extract/internal/common"
)

// DocumentPages loads a source document and returns its pages normalized for
// extraction. PDFs yield one PreparedPage per PDF page that carries a scanned
// image; raster files (jpg, jpeg, png) yield a single page at index 0.
func DocumentPages(path string, opts Options, logger *slog.Logger) ([]PreparedPage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !constants.IsAllowedFile(path) {
		return nil, common.NewAppError("INVALID_FILE",
			fmt.Sprintf("unsupported file type: %s", path), common.ErrInvalidInput)
	}

	if !constants.IsPDF(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, common.NewAppError("INVALID_FILE",
				fmt.Sprintf("open image file: %v", err), common.ErrInvalidInput)
		}
		defer func() {
			if cErr := f.Close(); cErr != nil {
				logger.Warn("imaging.file.close_error", "path", path, "error", cErr)
			}
		}()
		page, err := preparePage(f, 0, opts, logger)
		if err != nil {
			return nil, err
		}
		return []PreparedPage{page}, nil
	}

	return pdfPages(path, opts, logger)
}

// Page loads a single zero-based page from a document.
func Page(path string, index int, opts Options, logger *slog.Logger) (PreparedPage, error) {
	pages, err := DocumentPages(path, opts, logger)
	if err != nil {
		return PreparedPage{}, err
	}
	if index < 0 || index >= len(pages) {
		return PreparedPage{}, common.NewAppError("PAGE_OUT_OF_RANGE",
			fmt.Sprintf("page %d out of range, document has %d pages", index, len(pages)),
			common.ErrPageOutOfRange)
	}
	return pages[index], nil
}

func pdfPages(path string, opts Options, logger *slog.Logger) ([]PreparedPage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewAppError("INVALID_FILE",
			fmt.Sprintf("open pdf: %v", err), common.ErrInvalidInput)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			logger.Warn("imaging.pdf.close_error", "path", path, "error", cErr)
		}
	}()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, common.NewAppError("DECODE_ERROR",
			fmt.Sprintf("pdfcpu read: %v", err), common.ErrDecode)
	}

	pages := make([]PreparedPage, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := largestPageImage(ctx, pageNr)
		if err != nil {
			return nil, common.NewAppError("DECODE_ERROR",
				fmt.Sprintf("extract image for pdf page %d: %v", pageNr, err), common.ErrDecode)
		}
		if r == nil {
			logger.Warn("imaging.pdf.no_image", "path", path, "pdf_page", pageNr)
			continue
		}
		page, err := preparePage(r, len(pages), opts, logger)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	logger.Info("imaging.pdf.ok",
		"path", path,
		"pdf_pages", ctx.PageCount,
		"prepared_pages", len(pages),
	)
	return pages, nil
}

// largestPageImage picks the biggest image stream on a PDF page. Scanned
// forms carry a single full-page scan, but some scanners also embed small
// logo or barcode images.
func largestPageImage(ctx *model.Context, pageNr int) (io.Reader, error) {
	images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}

	var best io.Reader
	bestSize := -1
	for _, img := range images {
		data, err := io.ReadAll(img)
		if err != nil {
			return nil, err
		}
		if len(data) > bestSize {
			bestSize = len(data)
			best = bytes.NewReader(data)
		}
	}
	return best, nil
}
