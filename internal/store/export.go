package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ExportHeader is the fixed column order of an export file.
var ExportHeader = []string{"player", "score", "game", "date"}

// Export writes the global leaderboard, capped at the export limit, to dest
// as comma-separated text with ExportHeader as the first row. It returns the
// number of data rows written.
//
// The file is written to a temporary sibling and renamed into place, so dest
// is either the complete export or untouched. Read failures are STORAGE_READ
// errors; anything that goes wrong with dest is a STORAGE_EXPORT error.
func (s *Store) Export(ctx context.Context, dest string) (int, error) {
	records, err := s.TopScores(ctx, "", s.exportLimit)
	if err != nil {
		return 0, err
	}

	if err := writeExport(dest, records); err != nil {
		return 0, &Error{Code: ErrCodeExport, Op: "export scores", Path: dest, Err: err}
	}

	s.logger.Debug("scores exported", "dest", dest, "rows", len(records))
	return len(records), nil
}

func writeExport(dest string, records []Record) (err error) {
	tmp := filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Player, strconv.Itoa(rec.Score), rec.Game, FormatDate(rec.Date)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", rec.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
