package importer

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/storage"
)

const (
	// DefaultBatchSize is the number of documents written per transaction.
	DefaultBatchSize = 100
	// MaxBatchSize keeps a single INSERT under SQLite's bound-variable limit.
	MaxBatchSize = 1000

	maxLineSize = 16 << 20
)

// BatchWriter is the write side of one corpus table.
type BatchWriter[T any] interface {
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, items []T) error
}

// VerseCounter reports how many verses each chapter holds.
type VerseCounter interface {
	CountBySura(ctx context.Context) (map[int]int, error)
}

// Paths locates the JSON-lines exports of the three collections.
type Paths struct {
	Suras  string
	Verses string
	Words  string
}

// DefaultPaths returns the export layout under dataDir.
func DefaultPaths(dataDir string) Paths {
	return Paths{
		Suras:  filepath.Join(dataDir, "suras", "documents.jsonl"),
		Verses: filepath.Join(dataDir, "verses", "documents.jsonl"),
		Words:  filepath.Join(dataDir, "wordIndex", "documents.jsonl"),
	}
}

// VerseCountMismatch is a chapter whose declared verseCount disagrees with the imported verses.
type VerseCountMismatch struct {
	Sura     int `json:"sura"`
	Declared int `json:"declared"`
	Actual   int `json:"actual"`
}

// Stats summarizes one import run.
type Stats struct {
	Suras        int                  `json:"suras"`
	Verses       int                  `json:"verses"`
	Words        int                  `json:"words"`
	Skipped      int                  `json:"skipped"`
	WordsDerived bool                 `json:"words_derived"`
	Mismatches   []VerseCountMismatch `json:"mismatches,omitempty"`
}

// Pipeline loads a corpus export into the document store.
type Pipeline struct {
	suras     BatchWriter[storage.Sura]
	verses    BatchWriter[storage.Verse]
	words     BatchWriter[storage.Word]
	counter   VerseCounter
	batchSize int
}

// NewPipeline creates a new import pipeline. batchSize is clamped to [1, MaxBatchSize].
func NewPipeline(
	suras BatchWriter[storage.Sura],
	verses BatchWriter[storage.Verse],
	words BatchWriter[storage.Word],
	counter VerseCounter,
	batchSize int,
) *Pipeline {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchSize = min(batchSize, MaxBatchSize)
	return &Pipeline{
		suras:     suras,
		verses:    verses,
		words:     words,
		counter:   counter,
		batchSize: batchSize,
	}
}

// Run wipes the store and imports chapters, verses and words from paths.
// When the word index file does not exist, words are derived from verse segments.
func (p *Pipeline) Run(ctx context.Context, paths Paths) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)
	var stats Stats

	logger.InfoContext(ctx, "deleting existing collections")
	if err := p.words.DeleteAll(ctx); err != nil {
		return stats, err
	}
	if err := p.verses.DeleteAll(ctx); err != nil {
		return stats, err
	}
	if err := p.suras.DeleteAll(ctx); err != nil {
		return stats, err
	}

	declared := make(map[int]int)
	n, skipped, err := importFile(ctx, paths.Suras, p.suras, p.batchSize, func(s *storage.Sura) {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		declared[s.Number] = s.VerseCount
	})
	if err != nil {
		return stats, fmt.Errorf("failed to import suras: %w", err)
	}
	stats.Suras, stats.Skipped = n, stats.Skipped+skipped

	_, statErr := os.Stat(paths.Words)
	derive := errors.Is(statErr, os.ErrNotExist)
	var derived []storage.Word

	n, skipped, err = importFile(ctx, paths.Verses, p.verses, p.batchSize, func(v *storage.Verse) {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		if v.Segments == nil {
			v.Segments = []storage.Segment{}
		}
		slices.SortStableFunc(v.Segments, func(a, b storage.Segment) int { return a.Pos - b.Pos })
		if derive {
			derived = append(derived, WordsFromVerse(*v)...)
		}
	})
	if err != nil {
		return stats, fmt.Errorf("failed to import verses: %w", err)
	}
	stats.Verses, stats.Skipped = n, stats.Skipped+skipped

	if derive {
		logger.InfoContext(ctx, "word index file not found, deriving words from segments", "path", paths.Words)
		stats.WordsDerived = true
		for start := 0; start < len(derived); start += p.batchSize {
			end := min(start+p.batchSize, len(derived))
			if err := p.words.InsertBatch(ctx, derived[start:end]); err != nil {
				return stats, fmt.Errorf("failed to import derived words: %w", err)
			}
		}
		stats.Words = len(derived)
	} else {
		n, skipped, err = importFile(ctx, paths.Words, p.words, p.batchSize, func(w *storage.Word) {
			if w.ID == "" {
				w.ID = uuid.NewString()
			}
		})
		if err != nil {
			return stats, fmt.Errorf("failed to import words: %w", err)
		}
		stats.Words, stats.Skipped = n, stats.Skipped+skipped
	}

	mismatches, err := p.checkVerseCounts(ctx, declared)
	if err != nil {
		return stats, err
	}
	stats.Mismatches = mismatches

	logger.InfoContext(ctx, "import completed",
		"suras", stats.Suras,
		"verses", stats.Verses,
		"words", stats.Words,
		"skipped", stats.Skipped,
		"verse_count_mismatches", len(stats.Mismatches),
	)
	return stats, nil
}

func (p *Pipeline) checkVerseCounts(ctx context.Context, declared map[int]int) ([]VerseCountMismatch, error) {
	actual, err := p.counter.CountBySura(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count verses: %w", err)
	}

	var mismatches []VerseCountMismatch
	for number, want := range declared {
		if got := actual[number]; got != want {
			mismatches = append(mismatches, VerseCountMismatch{Sura: number, Declared: want, Actual: got})
		}
	}
	slices.SortFunc(mismatches, func(a, b VerseCountMismatch) int { return a.Sura - b.Sura })

	logger := contextutil.LoggerFromContext(ctx)
	for _, m := range mismatches {
		logger.WarnContext(ctx, "verse count mismatch", "sura", m.Sura, "declared", m.Declared, "actual", m.Actual)
	}
	return mismatches, nil
}

// WordsFromVerse builds the root index rows for one verse.
// Row ids are name-based UUIDs so re-imports produce the same ids.
func WordsFromVerse(v storage.Verse) []storage.Word {
	words := make([]storage.Word, 0, len(v.Segments))
	for _, s := range v.Segments {
		key := fmt.Sprintf("word:%d:%d:%d", v.Sura, v.Aya, s.Pos)
		words = append(words, storage.Word{
			ID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String(),
			Sura: v.Sura,
			Aya:  v.Aya,
			Pos:  s.Pos,
			Root: s.Root,
		})
	}
	return words
}

// importFile streams a JSON-lines file into w in batches. Malformed lines are logged and skipped.
func importFile[T any](ctx context.Context, path string, w BatchWriter[T], batchSize int, prepare func(*T)) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	logger := contextutil.LoggerFromContext(ctx).With("path", path)
	logger.InfoContext(ctx, "importing file")
	return readBatches(ctx, f, w, batchSize, prepare, logger)
}

func readBatches[T any](ctx context.Context, r io.Reader, w BatchWriter[T], batchSize int, prepare func(*T), logger *slog.Logger) (int, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	batch := make([]T, 0, batchSize)
	count, skipped, line := 0, 0, 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := w.InsertBatch(ctx, batch); err != nil {
			return err
		}
		count += len(batch)
		logger.DebugContext(ctx, "documents imported", "count", count)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		line++
		select {
		case <-ctx.Done():
			return count, skipped, ctx.Err()
		default:
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			skipped++
			logger.WarnContext(ctx, "skipping malformed line", "line", line, "error", err)
			continue
		}
		if prepare != nil {
			prepare(&item)
		}

		batch = append(batch, item)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return count, skipped, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return count, skipped, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}
	if err := flush(); err != nil {
		return count, skipped, err
	}

	return count, skipped, nil
}
