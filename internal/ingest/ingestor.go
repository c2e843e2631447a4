// Package ingest brings clearance documents from the local filesystem into a
// clearance set, with content-hash deduplication.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/internal/repository"
)

// IngestionResult describes one uploaded document.
type IngestionResult struct {
	DocumentID   string
	SourcePath   string
	FileExt      string
	HashHex      string
	Deduplicated bool
	UploadedAt   time.Time
	Err          string
}

// DirStats aggregates a directory upload.
type DirStats struct {
	Scanned      int
	Matched      int
	Succeeded    int
	Failed       int
	Deduplicated int
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	SetsRepo    repository.ClearanceSetRepository
	DocsRepo    repository.DocumentRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	Logger      *slog.Logger
}

func NewFSIngestor(sets repository.ClearanceSetRepository, docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		SetsRepo: sets,
		DocsRepo: docs,
		Logger:   logger,
	}
}

func (i *FSIngestor) allowed(ext string) bool {
	exts := i.AllowedExts
	if exts == nil {
		exts = constants.AllowedExtensions
	}
	_, ok := exts[ext]
	return ok
}

// IngestPath uploads one file into the set under the given clearance type.
// A file whose content hash already exists in the set is returned as-is with
// Deduplicated set.
func (i *FSIngestor) IngestPath(ctx context.Context, setID uuid.UUID, clearanceType, path string) (IngestionResult, *ent.Document, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path failed", "path", path, "error", err)
		return out, nil, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, nil, fmt.Errorf("unsupported or missing extension %q", ext)
	}

	ctype, ok := constants.Canonicalize(clearanceType)
	if !ok {
		return out, nil, fmt.Errorf("unknown clearance type %q", clearanceType)
	}

	if _, err := i.SetsRepo.GetByID(ctx, setID); err != nil {
		return out, nil, fmt.Errorf("clearance set %s: %w", setID, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("open failed", "path", abs, "error", err)
		return out, nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.Logger.Warn("close failed", "path", abs, "error", err)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		i.Logger.Error("hash failed", "path", abs, "error", err)
		return out, nil, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.DocsRepo.UpsertByHash(ctx, setID, string(ctype), abs, filepath.Base(abs), ext, sum, now)
	if err != nil {
		return out, nil, err
	}

	out = IngestionResult{
		DocumentID:   row.ID.String(),
		SourcePath:   row.SourcePath,
		FileExt:      row.FileExt,
		HashHex:      hex.EncodeToString(sum),
		Deduplicated: dedup,
		UploadedAt:   row.UploadedAt,
	}
	return out, row, nil
}

// IngestDirectory walks root and calls IngestPath for each allowed file.
// Returns per-file results plus aggregate stats.
func (i *FSIngestor) IngestDirectory(ctx context.Context, setID uuid.UUID, clearanceType, root string) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !i.allowed(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		r, _, err := i.IngestPath(ctx, setID, clearanceType, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
