// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns uploaded files into normalized library records.
// PDFs go through text extraction and AI metadata extraction; Excel
// workbooks are read row by row. A failing file is reported and skipped;
// the rest of the batch continues.
package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperdesk/internal/ai"
	"github.com/pdiddy/paperdesk/internal/library"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// FileKind classifies an uploaded file for dispatch.
type FileKind int

const (
	KindUnrecognized FileKind = iota
	KindPDF
	KindSpreadsheet
)

// DetectKind classifies a file by declared MIME type when one is given,
// falling back to the filename extension. Anything else is unrecognized
// and silently ignored by the batch.
func DetectKind(name, mimeType string) FileKind {
	if mimeType == "application/pdf" {
		return KindPDF
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".xlsx", ".xls":
		return KindSpreadsheet
	}
	return KindUnrecognized
}

// BatchResult holds the outcome of one upload batch.
type BatchResult struct {
	// Added is the number of papers appended to the library.
	Added int
	// Failed is the number of files that produced an error.
	Failed int
	// Ignored is the number of files of unrecognized type.
	Ignored int
	// Errors holds one user-facing message per failed file.
	Errors []string
}

// HasFailures reports whether any files failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// UploadBatch processes files in the given order, printing per-file
// progress to w. A per-file failure is recorded and the loop continues;
// every paper produced across the batch is appended to the store in one
// final add, in file-then-row order.
func UploadBatch(ctx context.Context, c ai.Caller, store *library.Store, paths []string, w io.Writer) (BatchResult, error) {
	var result BatchResult
	var papers []types.Paper

	for i, path := range paths {
		name := filepath.Base(path)
		fmt.Fprintf(w, "processing file %d/%d: %s\n", i+1, len(paths), name)

		produced, err := ingestFile(ctx, c, path)
		if err != nil {
			if err == errUnrecognized {
				result.Ignored++
				continue
			}
			msg := fmt.Sprintf("processing %s failed: %v", name, err)
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			result.Errors = append(result.Errors, msg)
			result.Failed++
			continue
		}
		papers = append(papers, produced...)
	}

	if len(papers) > 0 {
		if err := store.Add(papers...); err != nil {
			return result, fmt.Errorf("saving library: %w", err)
		}
	}
	result.Added = len(papers)

	fmt.Fprintf(w, "\nadded: %d paper(s), failed: %d file(s), ignored: %d file(s)\n",
		result.Added, result.Failed, result.Ignored)
	return result, nil
}

// errUnrecognized marks a file of unsupported type; such files are
// skipped without a user-visible error.
var errUnrecognized = fmt.Errorf("unrecognized file type")

// ingestFile produces zero or more papers from one file: one for a PDF,
// one per row for a spreadsheet.
func ingestFile(ctx context.Context, c ai.Caller, path string) ([]types.Paper, error) {
	switch DetectKind(path, "") {
	case KindPDF:
		text, err := ExtractText(path)
		if err != nil {
			return nil, err
		}
		fields, err := ai.Extract(ctx, c, text)
		if err != nil {
			return nil, err
		}
		return []types.Paper{NewPaper(fields)}, nil

	case KindSpreadsheet:
		rows, err := ReadRows(path)
		if err != nil {
			return nil, err
		}
		papers := make([]types.Paper, 0, len(rows))
		for _, row := range rows {
			papers = append(papers, NewPaper(NormalizeRow(row)))
		}
		return papers, nil

	default:
		return nil, errUnrecognized
	}
}
