package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eunmann/hilbertpix/pkg/membudget"
)

func TestRunNoArgs(t *testing.T) {
	err := Run(nil)
	if err == nil {
		t.Fatal("expected error with no args")
	}
	if !strings.Contains(err.Error(), "usage") {
		t.Errorf("expected usage message, got: %v", err)
	}
}

func TestRunUnknownMode(t *testing.T) {
	err := Run([]string{"x", "in", "out"})
	if err == nil {
		t.Fatal("expected error with unknown mode")
	}
	if !strings.Contains(err.Error(), "unknown mode") {
		t.Errorf("expected 'unknown mode' error, got: %v", err)
	}
}

func TestRunMissingPositional(t *testing.T) {
	err := Run([]string{"e", "only-input"})
	if err == nil {
		t.Fatal("expected error with one positional argument")
	}
	if !strings.Contains(err.Error(), "INPUT and OUTPUT") {
		t.Errorf("expected positional-argument error, got: %v", err)
	}
}

func TestEncodeDecodeRoundTripFiles(t *testing.T) {
	// Exercise each accepted selector spelling along the way.
	encodeSelectors := []string{"e", "-e", "--encode"}
	decodeSelectors := []string{"d", "-d", "--decode"}

	for i, enc := range encodeSelectors {
		dir := t.TempDir()
		inPath := filepath.Join(dir, "payload.bin")
		imgPath := filepath.Join(dir, "payload.ppm")
		outPath := filepath.Join(dir, "restored.bin")

		payload := []byte("hello, hilbert curve! \x00\xff\x01")
		if err := os.WriteFile(inPath, payload, 0644); err != nil {
			t.Fatal(err)
		}

		if err := Run([]string{enc, inPath, imgPath}); err != nil {
			t.Fatalf("encode via %q failed: %v", enc, err)
		}
		if err := Run([]string{decodeSelectors[i], imgPath, outPath}); err != nil {
			t.Fatalf("decode via %q failed: %v", decodeSelectors[i], err)
		}

		restored, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(restored, payload) {
			t.Errorf("round trip via %q/%q: got %q, want %q", enc, decodeSelectors[i], restored, payload)
		}
	}
}

func TestEncodeMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Run([]string{"e", filepath.Join(dir, "absent"), filepath.Join(dir, "out.ppm")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "garbage")
	if err := os.WriteFile(inPath, []byte("not a ppm"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Run([]string{"d", inPath, filepath.Join(dir, "out.bin")})
	if err == nil {
		t.Fatal("expected error decoding garbage input")
	}
}

func TestEncodeOverBudget(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "payload.bin")
	if err := os.WriteFile(inPath, make([]byte, 4096), 0644); err != nil {
		t.Fatal(err)
	}

	err := Run([]string{"e", "--mem-budget", "1KiB", inPath, filepath.Join(dir, "out.ppm")})
	if err == nil {
		t.Fatal("expected error when working set exceeds budget")
	}
	if !strings.Contains(err.Error(), "memory budget") {
		t.Errorf("expected memory budget error, got: %v", err)
	}
}

func TestDetermineMemoryBudgetCLI(t *testing.T) {
	budget, err := determineMemoryBudget("4GiB")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Total() != 4*1024*1024*1024 {
		t.Errorf("Total() = %d, want %d", budget.Total(), 4*1024*1024*1024)
	}
	if budget.Source() != membudget.SourceCLI {
		t.Errorf("Source() = %s, want %s", budget.Source(), membudget.SourceCLI)
	}
}

func TestDetermineMemoryBudgetEnv(t *testing.T) {
	t.Setenv(memBudgetEnv, "2GiB")

	budget, err := determineMemoryBudget("")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Total() != 2*1024*1024*1024 {
		t.Errorf("Total() = %d, want %d", budget.Total(), 2*1024*1024*1024)
	}
	if budget.Source() != membudget.SourceEnv {
		t.Errorf("Source() = %s, want %s", budget.Source(), membudget.SourceEnv)
	}
}

func TestDetermineMemoryBudgetCLIOverridesEnv(t *testing.T) {
	t.Setenv(memBudgetEnv, "2GiB")

	budget, err := determineMemoryBudget("8GiB")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Total() != 8*1024*1024*1024 {
		t.Errorf("Total() = %d, want %d", budget.Total(), 8*1024*1024*1024)
	}
	if budget.Source() != membudget.SourceCLI {
		t.Errorf("Source() = %s, want %s", budget.Source(), membudget.SourceCLI)
	}
}

func TestDetermineMemoryBudgetDefault(t *testing.T) {
	os.Unsetenv(memBudgetEnv)

	budget, err := determineMemoryBudget("")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Source() != membudget.SourceAuto50Pct && budget.Source() != membudget.SourceDefault {
		t.Errorf("Source() = %s, want auto-50pct or default", budget.Source())
	}
}

func TestDetermineMemoryBudgetInvalid(t *testing.T) {
	if _, err := determineMemoryBudget("invalid"); err == nil {
		t.Fatal("expected error with invalid CLI budget")
	}

	t.Setenv(memBudgetEnv, "badvalue")
	if _, err := determineMemoryBudget(""); err == nil {
		t.Fatal("expected error with invalid env budget")
	}
}
