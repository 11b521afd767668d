package report

import (
	"strings"
	"testing"
)

func TestChunkTextEmpty(t *testing.T) {
	if got := ChunkText("", 100); got != nil {
		t.Errorf("expected no segments, got %v", got)
	}
}

func TestChunkTextSingleSegment(t *testing.T) {
	text := "line one\nline two"
	got := ChunkText(text, 100)
	if len(got) != 1 || got[0] != text {
		t.Errorf("got %v", got)
	}
}

func TestChunkTextSplitsOnLineBoundaries(t *testing.T) {
	text := "aaaa\nbbbb\ncccc\ndddd"
	got := ChunkText(text, 9) // fits two 4-char lines plus separator per chunk

	want := []string{"aaaa\nbbbb", "cccc\ndddd"}
	if len(got) != len(want) {
		t.Fatalf("got %d segments %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
	for i, seg := range got {
		if len(seg) > 9 {
			t.Errorf("segment %d exceeds limit: %d chars", i, len(seg))
		}
	}
}

func TestChunkTextOversizedLineStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 50)
	text := "short\n" + long + "\ntail"
	got := ChunkText(text, 10)

	want := []string{"short", long, "tail"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunkTextReconstruction(t *testing.T) {
	texts := []string{
		"a",
		"a\nb\nc",
		"\nleading empty line",
		"trailing newline\n",
		"blank\n\nmiddle",
		strings.Repeat("line of text\n", 40) + "last",
	}
	for _, text := range texts {
		for _, limit := range []int{1, 5, 13, 100} {
			got := ChunkText(text, limit)
			if len(got) == 0 {
				t.Fatalf("limit %d: no segments for non-empty input %q", limit, text)
			}
			if joined := strings.Join(got, "\n"); joined != text {
				t.Errorf("limit %d: reconstruction mismatch for %q: got %q", limit, text, joined)
			}
		}
	}
}
