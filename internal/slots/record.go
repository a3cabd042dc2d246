package slots

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"lifebox/internal/core"
)

// Record is the persisted form of all nine slots, indexed by id-1. A nil or
// empty entry is an empty slot.
type Record [NumSlots][]core.Point

// Slot returns the cells stored for id.
func (r *Record) Slot(id ID) []core.Point {
	if !id.Valid() {
		return nil
	}
	return r[id-1]
}

// Source provides a persisted record.
type Source interface {
	ReadRecord(ctx context.Context) (Record, error)
}

// Sink stores a record, replacing whatever it held before.
type Sink interface {
	WriteRecord(ctx context.Context, rec Record) error
}

// legacyKeyBase is the keyboard code of '1'. Older save files keyed slots by
// the code of the digit key that was pressed ("49".."57").
const legacyKeyBase = 48

func legacyKey(id ID) string { return strconv.Itoa(legacyKeyBase + int(id)) }

// DecodeJSON parses a record of the form {"1": [[x, y], ...], ..., "9": [...]}.
// A record must hold exactly the nine slot keys; anything else wraps
// ErrNoSavedData.
func DecodeJSON(r io.Reader) (Record, error) {
	var raw map[string][][]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Record{}, fmt.Errorf("%w: decode record: %w", ErrNoSavedData, err)
	}
	if len(raw) != NumSlots {
		return Record{}, fmt.Errorf("%w: record has %d keys, want %d", ErrNoSavedData, len(raw), NumSlots)
	}
	key := ID.String
	if _, ok := raw[Slot1.String()]; !ok {
		key = legacyKey
	}
	var rec Record
	for _, id := range IDs() {
		pairs, ok := raw[key(id)]
		if !ok {
			return Record{}, fmt.Errorf("%w: record is missing slot %s", ErrNoSavedData, id)
		}
		points, err := fromPairs(pairs)
		if err != nil {
			return Record{}, fmt.Errorf("%w: slot %s: %w", ErrNoSavedData, id, err)
		}
		rec[id-1] = points
	}
	return rec, nil
}

// EncodeJSON writes rec in the format read by DecodeJSON.
func EncodeJSON(w io.Writer, rec Record) error {
	raw := make(map[string][][2]int, NumSlots)
	for _, id := range IDs() {
		raw[id.String()] = toPairs(rec[id-1])
	}
	return json.NewEncoder(w).Encode(raw)
}

// MarshalPoints encodes one slot's cells as a JSON list of [x, y] pairs.
func MarshalPoints(points []core.Point) ([]byte, error) {
	return json.Marshal(toPairs(points))
}

// UnmarshalPoints decodes the output of MarshalPoints. Every entry must be
// exactly one [x, y] pair.
func UnmarshalPoints(data []byte) ([]core.Point, error) {
	var pairs [][]int
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	return fromPairs(pairs)
}

func toPairs(points []core.Point) [][2]int {
	pairs := make([][2]int, 0, len(points))
	for _, p := range points {
		pairs = append(pairs, [2]int{p.X, p.Y})
	}
	return pairs
}

func fromPairs(pairs [][]int) ([]core.Point, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	points := make([]core.Point, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("cell %d has %d coordinates, want 2", i, len(p))
		}
		points = append(points, core.Point{X: p[0], Y: p[1]})
	}
	return points, nil
}

// File reads and writes a JSON record at Path.
type File struct {
	Path string
}

// ReadRecord loads the record from disk.
func (f File) ReadRecord(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return Record{}, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer file.Close()
	return DecodeJSON(file)
}

// WriteRecord truncates the file and writes rec.
func (f File) WriteRecord(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.Path, err)
	}
	if err := EncodeJSON(file, rec); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return file.Close()
}
