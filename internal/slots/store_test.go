package slots

import (
	"context"
	"errors"
	"slices"
	"testing"

	"lifebox/internal/core"
)

type fakeBoard struct {
	cells  []core.Point
	loads  int
	loaded []core.Point
}

func (b *fakeBoard) LiveCells() []core.Point { return slices.Clone(b.cells) }

func (b *fakeBoard) Load(points []core.Point) {
	b.loads++
	b.loaded = slices.Clone(points)
	b.cells = slices.Clone(points)
}

type memory struct {
	rec    Record
	err    error
	writes int
}

func (m *memory) ReadRecord(context.Context) (Record, error) { return m.rec, m.err }

func (m *memory) WriteRecord(_ context.Context, rec Record) error {
	m.writes++
	m.rec = rec
	return m.err
}

var sample = []core.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}

func TestSaveGetDelete(t *testing.T) {
	s := NewStore()
	if err := s.Save(Slot3, sample); err != nil {
		t.Fatalf("save slot 3: %v", err)
	}
	got, ok := s.Get(Slot3)
	if !ok {
		t.Fatal("expected slot 3 to be filled")
	}
	if !slices.Equal(got, sample) {
		t.Fatalf("slot 3 = %v, expected %v", got, sample)
	}

	if err := s.Delete(Slot3); err != nil {
		t.Fatalf("delete slot 3: %v", err)
	}
	if _, ok := s.Get(Slot3); ok {
		t.Fatal("expected slot 3 to be empty after delete")
	}
}

func TestSaveCopiesInput(t *testing.T) {
	s := NewStore()
	cells := slices.Clone(sample)
	_ = s.Save(Slot1, cells)
	cells[0] = core.Point{X: 99, Y: 99}

	got, _ := s.Get(Slot1)
	got[1] = core.Point{X: 77, Y: 77}

	again, _ := s.Get(Slot1)
	if !slices.Equal(again, sample) {
		t.Fatalf("stored slot was mutated through an alias: %v", again)
	}
}

func TestInvalidSlotRejected(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot2, sample)
	before := s.Snapshot()

	for _, id := range []ID{0, 10, 255} {
		if err := s.Save(id, sample); !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("Save(%d) err=%v, expected ErrInvalidSlot", id, err)
		}
		if err := s.Delete(id); !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("Delete(%d) err=%v, expected ErrInvalidSlot", id, err)
		}
		if _, ok := s.Get(id); ok {
			t.Fatalf("Get(%d) reported a filled slot", id)
		}
		if _, err := s.Select(id, &fakeBoard{}); !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("Select(%d) err=%v, expected ErrInvalidSlot", id, err)
		}
	}

	after := s.Snapshot()
	for i := range before {
		if !slices.Equal(before[i], after[i]) {
			t.Fatalf("slot %d changed after rejected operations", i+1)
		}
	}
}

func TestDescribe(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot1, sample)
	_ = s.Save(Slot9, sample)

	want := []string{
		"Slot 1: Filled",
		"Slot 2: Empty",
		"Slot 3: Empty",
		"Slot 4: Empty",
		"Slot 5: Empty",
		"Slot 6: Empty",
		"Slot 7: Empty",
		"Slot 8: Empty",
		"Slot 9: Filled",
	}
	if got := s.Describe(); !slices.Equal(got, want) {
		t.Fatalf("Describe() = %q, expected %q", got, want)
	}
}

func TestArmInterlock(t *testing.T) {
	s := NewStore()
	if err := s.ArmBind(); err != nil {
		t.Fatalf("arm bind: %v", err)
	}
	if err := s.ArmDelete(); !errors.Is(err, ErrModeArmed) {
		t.Fatalf("expected ArmDelete to be rejected, got %v", err)
	}
	if s.Mode() != ModeBind {
		t.Fatalf("expected bind mode to remain armed, got %s", s.Mode())
	}
	if err := s.ArmBind(); !errors.Is(err, ErrModeArmed) {
		t.Fatalf("expected second ArmBind to be rejected, got %v", err)
	}

	if _, err := s.Select(Slot4, &fakeBoard{cells: sample}); err != nil {
		t.Fatalf("select slot 4: %v", err)
	}
	if s.Mode() != ModeNone {
		t.Fatalf("expected bind to be single-shot, mode=%s", s.Mode())
	}
	if err := s.ArmDelete(); err != nil {
		t.Fatalf("expected ArmDelete after a completed bind, got %v", err)
	}
	s.Disarm()
	if err := s.ArmBind(); err != nil {
		t.Fatalf("expected ArmBind after Disarm, got %v", err)
	}
}

func TestSelectBind(t *testing.T) {
	s := NewStore()
	board := &fakeBoard{cells: sample}
	_ = s.ArmBind()

	outcome, err := s.Select(Slot5, board)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if outcome != OutcomeBound {
		t.Fatalf("expected bound outcome, got %s", outcome)
	}
	if got, _ := s.Get(Slot5); !slices.Equal(got, sample) {
		t.Fatalf("slot 5 = %v, expected board cells", got)
	}
	if id, ok := s.Current(); !ok || id != Slot5 {
		t.Fatalf("expected current slot 5, got %d (%v)", id, ok)
	}
	if board.loads != 0 {
		t.Fatal("binding must not reload the board")
	}
}

func TestSelectBindEmptyBoard(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot6, sample)
	_ = s.ArmBind()

	outcome, err := s.Select(Slot6, &fakeBoard{})
	if err != nil || outcome != OutcomeBound {
		t.Fatalf("select = %s, %v", outcome, err)
	}
	if s.Filled(Slot6) {
		t.Fatal("binding an empty board should leave the slot empty")
	}
	if id, ok := s.Current(); !ok || id != Slot6 {
		t.Fatalf("expected current slot 6, got %d (%v)", id, ok)
	}
	if s.Mode() != ModeNone {
		t.Fatalf("expected mode disarmed, got %s", s.Mode())
	}
}

func TestSelectDelete(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot2, sample)
	_ = s.ArmDelete()

	outcome, err := s.Select(Slot6, &fakeBoard{})
	if err != nil {
		t.Fatalf("select empty slot: %v", err)
	}
	if outcome != OutcomeSkipped || s.Mode() != ModeDelete {
		t.Fatalf("empty slot under delete: outcome=%s mode=%s, expected skipped/delete", outcome, s.Mode())
	}

	outcome, err = s.Select(Slot2, &fakeBoard{})
	if err != nil {
		t.Fatalf("select filled slot: %v", err)
	}
	if outcome != OutcomeDeleted || s.Mode() != ModeNone {
		t.Fatalf("filled slot under delete: outcome=%s mode=%s, expected deleted/none", outcome, s.Mode())
	}
	if s.Filled(Slot2) {
		t.Fatal("expected slot 2 to be emptied")
	}
}

func TestSelectLoad(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot7, sample)
	board := &fakeBoard{cells: []core.Point{{X: 9, Y: 9}}}

	outcome, err := s.Select(Slot8, board)
	if err != nil || outcome != OutcomeEmpty {
		t.Fatalf("empty slot: outcome=%s err=%v", outcome, err)
	}
	if board.loads != 0 {
		t.Fatal("empty slot must leave the board untouched")
	}
	if id, _ := s.Current(); id != Slot8 {
		t.Fatalf("expected current slot 8, got %d", id)
	}

	outcome, err = s.Select(Slot7, board)
	if err != nil || outcome != OutcomeLoaded {
		t.Fatalf("filled slot: outcome=%s err=%v", outcome, err)
	}
	if !slices.Equal(board.loaded, sample) {
		t.Fatalf("board loaded %v, expected %v", board.loaded, sample)
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot1, sample)

	err := s.Load(context.Background(), &memory{err: errors.New("disk on fire")})
	if !errors.Is(err, ErrNoSavedData) {
		t.Fatalf("expected ErrNoSavedData warning, got %v", err)
	}
	for _, id := range IDs() {
		if s.Filled(id) {
			t.Fatalf("slot %s should be empty after failed load", id)
		}
	}
}

func TestPersistLoadRoundTrip(t *testing.T) {
	s := NewStore()
	_ = s.Save(Slot1, sample)
	_ = s.Save(Slot4, sample[:1])
	_ = s.Save(Slot9, sample[1:])

	sink := &memory{}
	if err := s.Persist(context.Background(), sink); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if sink.writes != 1 {
		t.Fatalf("expected one write, got %d", sink.writes)
	}

	restored := NewStore()
	if err := restored.Load(context.Background(), sink); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, id := range IDs() {
		want, _ := s.Get(id)
		got, _ := restored.Get(id)
		if !slices.Equal(got, want) {
			t.Fatalf("slot %s = %v, expected %v", id, got, want)
		}
	}
}

func TestPersistWrapsSinkError(t *testing.T) {
	s := NewStore()
	cause := errors.New("read-only filesystem")
	err := s.Persist(context.Background(), &memory{err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("expected sink error to be wrapped, got %v", err)
	}
}
