// Package dataset reads a play-by-play CSV into typed raw plays.
//
// Column names follow the nflscrapR play-by-play export. The header must
// carry every required column; row-level problems (unparseable numbers,
// NA cells, short rows) become NaN fields or skipped rows for the cleanser
// to handle, never errors.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/eleven413/playcall/internal/domain/play"
)

// Required columns in the source file.
const (
	colGameID            = "game_id"
	colPlayType          = "play_type"
	colHalfSecondsRemain = "half_seconds_remaining"
	colDown              = "down"
	colYardsToGo         = "ydstogo"
	colYardline          = "yardline_100"
	colScoreDifferential = "score_differential"
	colTimeoutsRemaining = "posteam_timeouts_remaining"
)

func requiredColumns() []string {
	return []string{
		colGameID,
		colPlayType,
		colHalfSecondsRemain,
		colDown,
		colYardsToGo,
		colYardline,
		colScoreDifferential,
		colTimeoutsRemaining,
	}
}

// Load reads the CSV at path into raw plays.
func Load(ctx context.Context, path string) ([]play.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(ctx, f)
}

// Read parses CSV play-by-play data from r. The first row is the header; a
// leading UTF-8 byte-order marker is tolerated.
func Read(ctx context.Context, r io.Reader) ([]play.Raw, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; short rows are skipped below
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns() {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var out []play.Raw
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		if len(rec) < len(header) {
			continue
		}

		out = append(out, play.Raw{
			GameID:               intField(rec, cols[colGameID]),
			PlayType:             strings.TrimSpace(rec[cols[colPlayType]]),
			HalfSecondsRemaining: numField(rec, cols[colHalfSecondsRemain]),
			Down:                 numField(rec, cols[colDown]),
			YardsToGo:            numField(rec, cols[colYardsToGo]),
			YardsToEndzone:       numField(rec, cols[colYardline]),
			ScoreDifferential:    numField(rec, cols[colScoreDifferential]),
			TimeoutsRemaining:    numField(rec, cols[colTimeoutsRemaining]),
		})
	}

	return out, nil
}

// numField parses a numeric cell. Empty, NA, or unparseable cells are NaN;
// the cleanser decides what to do with them.
func numField(rec []string, i int) float64 {
	s := strings.TrimSpace(rec[i])
	if s == "" || s == "NA" || s == "NaN" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// intField parses the game id. An unparseable id becomes 0, which the
// cleanser drops via its lower bound.
func intField(rec []string, i int) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(rec[i]), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
