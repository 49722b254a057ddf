package merge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverPairs(t *testing.T) {
	t.Run("Numbered Pairs In Order", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "2.osu", "1.osu", "1.mp3", "2.ogg", "notes.txt")

		pairs, err := DiscoverPairs(dir)
		if err != nil {
			t.Fatalf("DiscoverPairs() error = %v", err)
		}
		if len(pairs) != 2 {
			t.Fatalf("got %d pairs, want 2", len(pairs))
		}
		if filepath.Base(pairs[0].MapPath) != "1.osu" || filepath.Base(pairs[0].AudioPath) != "1.mp3" {
			t.Errorf("pair 1 = %+v", pairs[0])
		}
		if filepath.Base(pairs[1].MapPath) != "2.osu" || filepath.Base(pairs[1].AudioPath) != "2.ogg" {
			t.Errorf("pair 2 = %+v", pairs[1])
		}
	})

	t.Run("Count Mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "1.osu", "2.osu", "3.osu", "1.mp3", "2.mp3")

		_, err := DiscoverPairs(dir)
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
	})

	t.Run("Numbering Gap", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "1.osu", "3.osu", "1.mp3", "3.mp3")

		_, err := DiscoverPairs(dir)
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
	})

	t.Run("Non Numeric Stem", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "intro.osu", "1.mp3")

		_, err := DiscoverPairs(dir)
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
	})

	t.Run("Duplicate Audio Number", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "1.osu", "1.mp3", "1.wav")

		_, err := DiscoverPairs(dir)
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
	})

	t.Run("Empty Directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := DiscoverPairs(dir)
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
	})
}
