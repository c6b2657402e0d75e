package buffer

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_N(t *testing.T) {
	buf := N[int](4)
	if buf.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", buf.Cap())
	}
	if buf.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", buf.Len())
	}
	if len(buf.Slots()) != 4 {
		t.Fatalf("len(Slots()) = %d, want 4", len(buf.Slots()))
	}

	empty := N[int](0)
	if empty.Cap() != 0 || empty.Slots() != nil {
		t.Fatalf("N(0) allocated a block: cap=%d", empty.Cap())
	}
}

func TestBuffer_SetLen(t *testing.T) {
	buf := N[string](4)
	buf.SetLen(3)
	copy(buf.Elems(), []string{"a", "b", "c"})

	buf.SetLen(1)
	if diff := cmp.Diff([]string{"a", "", "", ""}, buf.Slots()); diff != "" {
		t.Fatalf("vacated slots not zeroed (-want +got):\n%s", diff)
	}

	buf.SetLen(4)
	if diff := cmp.Diff([]string{"a", "", "", ""}, buf.Elems()); diff != "" {
		t.Fatalf("Elems() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuffer_Reserve(t *testing.T) {
	buf := N[int](2)
	buf.SetLen(2)
	copy(buf.Elems(), []int{7, 8})

	if buf.Reserve(2) {
		t.Fatal("Reserve(2) reallocated a buffer that already had 2 slots")
	}
	if !buf.Reserve(5) {
		t.Fatal("Reserve(5) did not reallocate")
	}
	if buf.Cap() != 5 || buf.Len() != 2 {
		t.Fatalf("cap=%d len=%d, want 5 and 2", buf.Cap(), buf.Len())
	}
	if diff := cmp.Diff([]int{7, 8}, buf.Elems()); diff != "" {
		t.Fatalf("Elems() mismatch (-want +got):\n%s", diff)
	}
	if buf.Reallocs() != 1 {
		t.Fatalf("Reallocs() = %d, want 1", buf.Reallocs())
	}
}

func TestBuffer_ReallocZeroesOldBlock(t *testing.T) {
	buf := N[*int](2)
	buf.SetLen(2)
	x, y := 1, 2
	buf.Elems()[0], buf.Elems()[1] = &x, &y

	old := buf.Slots()
	buf.Realloc(4)
	for i, p := range old {
		if p != nil {
			t.Fatalf("old slot %d still references %v", i, *p)
		}
	}
	if *buf.Elems()[0] != 1 || *buf.Elems()[1] != 2 {
		t.Fatal("live elements were not moved")
	}
}

func TestBuffer_ReallocShrink(t *testing.T) {
	buf := N[int](8)
	buf.SetLen(3)
	buf.Realloc(3)
	if buf.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3", buf.Cap())
	}

	buf.SetLen(0)
	buf.Realloc(0)
	if buf.Cap() != 0 || buf.Slots() != nil {
		t.Fatal("Realloc(0) did not release the block")
	}
}

func TestBuffer_Adopt(t *testing.T) {
	buf := N[int](3)
	buf.Slots()[0] = 9

	next := []int{1, 2, 3, 0, 0, 0}
	old := buf.Slots()
	buf.Adopt(next, 3)
	if buf.Cap() != 6 || buf.Len() != 3 {
		t.Fatalf("cap=%d len=%d, want 6 and 3", buf.Cap(), buf.Len())
	}
	if old[0] != 0 {
		t.Fatal("Adopt did not zero the old block")
	}
}

func TestBuffer_Release(t *testing.T) {
	buf := N[int](4)
	buf.SetLen(4)
	buf.Release()
	if buf.Cap() != 0 || buf.Len() != 0 {
		t.Fatalf("cap=%d len=%d after Release", buf.Cap(), buf.Len())
	}
	buf.Release()
	if buf.Reallocs() != 1 {
		t.Fatalf("Reallocs() = %d, want 1", buf.Reallocs())
	}
}

func TestBuffer_Logger(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	buf := N[int](0)
	buf.SetLogger(logger)
	buf.Reserve(4)

	if !strings.Contains(out.String(), "buffer realloc") || !strings.Contains(out.String(), "to=4") {
		t.Fatalf("log output = %q", out.String())
	}
}

func TestMaxCap(t *testing.T) {
	if got := MaxCap[struct{}](); got != math.MaxInt {
		t.Errorf("MaxCap[struct{}]() = %d, want %d", got, math.MaxInt)
	}
	if got, want := MaxCap[int64](), int(maxBytes/8); got != want {
		t.Errorf("MaxCap[int64]() = %d, want %d", got, want)
	}
	if MaxCap[[16]int64]() >= MaxCap[int64]() {
		t.Error("MaxCap does not shrink with element size")
	}
}
