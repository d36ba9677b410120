package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage:\n  driver: file\n  file_path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func seedFile(t *testing.T, path string) {
	t.Helper()
	ds := domain.NewDataset()
	ds.Airlines = append(ds.Airlines,
		domain.Airline{ID: 1, Name: "Delta", Status: domain.StatusActive},
		domain.Airline{ID: 2, Name: "LATAM", Status: domain.StatusInactive},
	)
	ds.Seats = append(ds.Seats, domain.Seat{ID: 1, FlightID: 1, Number: "1A", Status: domain.SeatStatusReserved})
	require.NoError(t, repository.NewFileDatasetRepository(path).Save(context.Background(), ds))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.json")
	dst := filepath.Join(t.TempDir(), "dst.json")
	seedFile(t, src)
	cfg := writeConfig(t, src)

	exported, err := run(t, "", "--config", cfg, "export")
	require.NoError(t, err)

	var ds domain.Dataset
	require.NoError(t, json.Unmarshal([]byte(exported), &ds))
	assert.Len(t, ds.Airlines, 2)

	out, err := run(t, exported, "--config", cfg, "--file", dst, "import", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 records")

	loaded, err := repository.NewFileDatasetRepository(dst).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ds.Airlines, loaded.Airlines)
	assert.Equal(t, ds.Seats, loaded.Seats)
}

func TestImportRefusesNonEmptyTarget(t *testing.T) {
	db := filepath.Join(t.TempDir(), "db.json")
	seedFile(t, db)
	cfg := writeConfig(t, db)

	_, err := run(t, `{"aerolineas":[]}`, "--config", cfg, "import", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = run(t, `{"aerolineas":[]}`, "--config", cfg, "import", "--force", "-")
	require.NoError(t, err)

	loaded, err := repository.NewFileDatasetRepository(db).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Airlines)
	assert.NotNil(t, loaded.Tickets)
}

func TestImportRejectsInconsistentDataset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "db.json")
	cfg := writeConfig(t, db)

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"repeated id", `{"aerolineas":[{"id":1,"nombre":"A"},{"id":1,"nombre":"B"}]}`, "aerolineas: id 1 repeated"},
		{"shared dni", `{"pasajeros":[{"id":1,"dni":"9"},{"id":2,"dni":"9"}]}`, "dni 9 used by 1 and 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.doc, "--config", cfg, "import", "--force", "-")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			_, statErr := os.Stat(db)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "db.json")
	seedFile(t, db)
	cfg := writeConfig(t, db)

	out, err := run(t, "", "--config", cfg, "stats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"aerolineas", "2", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"asientos", "1", "0"}, strings.Fields(lines[5]))
}

func TestExportUnknownConfig(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "export")
	assert.Error(t, err)
}
