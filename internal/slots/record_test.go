package slots

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lifebox/internal/core"
)

func TestJSONRoundTrip(t *testing.T) {
	combos := []uint16{0, 1, 0b101010101, 0b111111111, 0b100000000, 0b010010010}
	for _, mask := range combos {
		var rec Record
		for _, id := range IDs() {
			if mask&(1<<(id-1)) != 0 {
				rec[id-1] = []core.Point{{X: int(id), Y: 1}, {X: int(id) + 1, Y: 2}}
			}
		}

		var buf bytes.Buffer
		if err := EncodeJSON(&buf, rec); err != nil {
			t.Fatalf("encode mask %b: %v", mask, err)
		}
		got, err := DecodeJSON(&buf)
		if err != nil {
			t.Fatalf("decode mask %b: %v", mask, err)
		}
		for i := range rec {
			if !slices.Equal(got[i], rec[i]) {
				t.Fatalf("mask %b slot %d = %v, expected %v", mask, i+1, got[i], rec[i])
			}
		}
	}
}

func TestEncodeJSONWritesAllKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, Record{}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"1":[],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[]}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("encoded %s, expected %s", got, want)
	}
}

func TestDecodeJSONRejectsIncompleteRecords(t *testing.T) {
	cases := map[string]string{
		"eight keys":  `{"1":[],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[]}`,
		"wrong key":   `{"1":[],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"10":[]}`,
		"ten keys":    `{"1":[],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[],"10":[]}`,
		"not json":    `{"1": [[1, 2]`,
		"wrong shape": `{"1":"x","2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[]}`,
		"empty":       ``,
		"long pair":   `{"1":[[3,4,5]],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[]}`,
		"short pair":  `{"1":[],"2":[[7]],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[]}`,
		"null pair":   `{"1":[null],"2":[],"3":[],"4":[],"5":[],"6":[],"7":[],"8":[],"9":[]}`,
	}
	for name, input := range cases {
		if _, err := DecodeJSON(strings.NewReader(input)); !errors.Is(err, ErrNoSavedData) {
			t.Fatalf("%s: expected ErrNoSavedData, got %v", name, err)
		}
	}
}

func TestDecodeJSONAcceptsLegacyKeys(t *testing.T) {
	input := `{"49":[[3,4],[5,6]],"50":[],"51":[],"52":[],"53":[],"54":[],"55":[],"56":[],"57":[[1,1]]}`
	rec, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode legacy record: %v", err)
	}
	if got := rec.Slot(Slot1); !slices.Equal(got, []core.Point{{X: 3, Y: 4}, {X: 5, Y: 6}}) {
		t.Fatalf("slot 1 = %v", got)
	}
	if got := rec.Slot(Slot9); !slices.Equal(got, []core.Point{{X: 1, Y: 1}}) {
		t.Fatalf("slot 9 = %v", got)
	}
}

func TestFileMissingIsNoSavedData(t *testing.T) {
	s := NewStore()
	err := s.Load(context.Background(), File{Path: filepath.Join(t.TempDir(), "absent.json")})
	if !errors.Is(err, ErrNoSavedData) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected missing-file warning, got %v", err)
	}
}

func TestFilePersistOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_boards.json")
	if err := os.WriteFile(path, []byte(strings.Repeat("junk ", 100)), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := NewStore()
	_ = s.Save(Slot3, sample)
	if err := s.Persist(context.Background(), File{Path: path}); err != nil {
		t.Fatalf("persist: %v", err)
	}

	restored := NewStore()
	if err := restored.Load(context.Background(), File{Path: path}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _ := restored.Get(Slot3); !slices.Equal(got, sample) {
		t.Fatalf("slot 3 = %v, expected %v", got, sample)
	}
	if restored.Filled(Slot1) {
		t.Fatal("slot 1 should be empty")
	}
}

func TestPointsRoundTrip(t *testing.T) {
	data, err := MarshalPoints(sample)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[[1,2],[3,4],[5,6]]" {
		t.Fatalf("marshaled %s", data)
	}
	got, err := UnmarshalPoints(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !slices.Equal(got, sample) {
		t.Fatalf("round trip = %v", got)
	}
}

func TestUnmarshalPointsRejectsBadPairs(t *testing.T) {
	for _, input := range []string{`[[1,2,3]]`, `[[1]]`, `[[1,2],[]]`} {
		if _, err := UnmarshalPoints([]byte(input)); err == nil {
			t.Fatalf("%s: expected an error", input)
		}
	}
	got, err := UnmarshalPoints([]byte(`[]`))
	if err != nil || got != nil {
		t.Fatalf("empty list = %v, %v", got, err)
	}
}
