package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Arora & Partners")
	assert.Equal(t, "Arora & Partners", cfg.Firm.Name)
	assert.Equal(t, "Client Balance", cfg.Trust.Columns.Balance)
	assert.Equal(t, "Last Activity Date", cfg.Trust.Columns.Date)
	assert.Equal(t, "Attorney", cfg.Fees.Columns.Attorney)
	assert.Equal(t, "payments.csv", cfg.Payments.Path)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("Test Firm")
	cfg.Trust.Columns.Client = "Matter Client"
	cfg.Timezone = "America/Toronto"

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	loc, err := got.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Toronto", loc.String())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("trust:\n  columns:\n    balance: Amount\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Amount", cfg.Trust.Columns.Balance)
	assert.Equal(t, "Client", cfg.Trust.Columns.Client)
	assert.Equal(t, "fees.csv", cfg.Fees.Path)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("firm: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing config")

	tz := filepath.Join(dir, "tz.yaml")
	require.NoError(t, os.WriteFile(tz, []byte("timezone: Mars/Olympus\n"), 0o644))
	_, err = Load(tz)
	assert.ErrorContains(t, err, "loading timezone")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(""), cfg)
}
