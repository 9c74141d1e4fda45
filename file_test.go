package wav

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteFileReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	w := mustWaveFile(t, 44100, 16, [][]int32{{100, -100, 0, 32767}})

	if err := WriteFile(path, w); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, w) {
		t.Fatalf("got %+v, want %+v", got, w)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || entries[0].Name() != "out.wav" {
		t.Fatalf("directory holds %v, want only out.wav", entries)
	}
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	if err := os.WriteFile(path, []byte("stale contents"), 0o600); err != nil {
		t.Fatal(err)
	}

	w := mustWaveFile(t, 8000, 8, [][]int32{{1}})
	if err := WriteFile(path, w); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != headerSize+1 {
		t.Fatalf("file length=%d, want %d", len(data), headerSize+1)
	}
}

func TestWriteFileInvalidLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFile(filepath.Join(dir, "out.wav"), nil); !errors.Is(err, ErrNilWaveFile) {
		t.Fatalf("error=%v, want ErrNilWaveFile", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("directory holds %v, want nothing", entries)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadFile(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error=%v, want os.ErrNotExist", err)
	}

	path := filepath.Join(dir, "short.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFile(path); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("error=%v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestWriteFileMode(t *testing.T) {
	dir := t.TempDir()
	w := mustWaveFile(t, 8000, 8, [][]int32{{1, 2}})

	fresh := filepath.Join(dir, "fresh.wav")
	if err := WriteFile(fresh, w); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(fresh)
	if err != nil {
		t.Fatal(err)
	}

	if fi.Mode().Perm() != 0o644 {
		t.Fatalf("new file mode=%v, want 0644", fi.Mode().Perm())
	}

	existing := filepath.Join(dir, "existing.wav")
	if err := os.WriteFile(existing, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.Chmod(existing, 0o640); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(existing, w); err != nil {
		t.Fatal(err)
	}

	fi, err = os.Stat(existing)
	if err != nil {
		t.Fatal(err)
	}

	if fi.Mode().Perm() != 0o640 {
		t.Fatalf("replaced file mode=%v, want 0640", fi.Mode().Perm())
	}
}
