package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealstack/internal/config"
	"sealstack/internal/coordinate"
)

func setupGlobals(t *testing.T) {
	t.Helper()
	cfg = config.Default()
	logger = zap.NewNop()
	t.Cleanup(func() {
		cfg = nil
		logger = nil
	})
}

func TestLoadEngine_Embedded(t *testing.T) {
	setupGlobals(t)

	eng, err := loadEngine()
	if err != nil {
		t.Fatalf("loadEngine failed: %v", err)
	}

	if eng.Store().Len() == 0 {
		t.Fatal("embedded corpus loaded zero patterns")
	}

	// Every seal layer should be represented out of the box.
	counts := eng.Store().CountByLayer()
	for _, layer := range coordinate.Layers() {
		if counts[layer] == 0 {
			t.Errorf("layer %d has no embedded patterns", layer)
		}
	}
}

func TestLoadEngine_ExternalTable(t *testing.T) {
	setupGlobals(t)

	table := `patterns:
  - coordinate: L1.Q1.BIZ.INVOICE.RECORD[C2]
    title: invoice record
    tags: [invoice, record]
    body: |
      invoice {entity}
`
	path := filepath.Join(t.TempDir(), "biz.yaml")
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg.Patterns.DisableEmbedded = true
	cfg.Patterns.Paths = []string{path}

	eng, err := loadEngine()
	if err != nil {
		t.Fatalf("loadEngine failed: %v", err)
	}
	if got := eng.Store().Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestLoadEngine_MissingTable(t *testing.T) {
	setupGlobals(t)
	cfg.Patterns.Paths = []string{filepath.Join(t.TempDir(), "absent.yaml")}

	if _, err := loadEngine(); err == nil {
		t.Error("expected error for missing pattern table")
	}
}

func TestRetrieveCmd(t *testing.T) {
	setupGlobals(t)

	cmd := &cobra.Command{}
	if err := retrieveCmd.RunE(cmd, []string{"L2.Q2.TECH.PYTHON.DATACLASS[C3]"}); err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}

	if err := retrieveCmd.RunE(cmd, []string{"not-a-coordinate"}); err == nil {
		t.Error("expected error for malformed coordinate")
	}
}

func TestLayersCmd(t *testing.T) {
	setupGlobals(t)

	if err := layersCmd.RunE(&cobra.Command{}, nil); err != nil {
		t.Fatalf("layers failed: %v", err)
	}
}

func TestBuildCmd_RequiresInput(t *testing.T) {
	setupGlobals(t)
	buildCoordinate = ""
	buildEntity = ""

	if err := buildCmd.RunE(&cobra.Command{}, nil); err == nil {
		t.Error("expected error with no query and no coordinate")
	}
}

func TestBuildCmd_Query(t *testing.T) {
	setupGlobals(t)
	buildCoordinate = ""
	buildEntity = ""

	if err := buildCmd.RunE(&cobra.Command{}, []string{"users", "module", "with", "auth"}); err != nil {
		t.Fatalf("build failed: %v", err)
	}
}
