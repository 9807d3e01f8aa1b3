package tab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func saveInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	tbl, err := Load(saveInput(t, "1,a\n2,b\n3,c\n"), DefaultConfig())
	assert.NoError(err)
	assert.True(tbl.Len() == 3)
	assert.Equal("1", string(tbl.Record(0).Key(1)))
	assert.Equal("c", string(tbl.Record(2).Field(1)))
}

func TestLoadNoTrailingNewline(t *testing.T) {
	assert := assert.New(t)
	tbl, err := Load(saveInput(t, "1,a\n2,b"), DefaultConfig())
	assert.NoError(err)
	assert.True(tbl.Len() == 2)
	assert.Equal("b", string(tbl.Record(1).Field(1)))
}

func TestLoadCRLF(t *testing.T) {
	assert := assert.New(t)
	tbl, err := Load(saveInput(t, "1,a\r\n2,b\r\n"), DefaultConfig())
	assert.NoError(err)
	assert.True(tbl.Len() == 2)

	// the CR must not leak into the last field
	assert.Equal("a", string(tbl.Record(0).Field(1)))
}

func TestLoadSkipsEmptyLines(t *testing.T) {
	assert := assert.New(t)
	tbl, err := Load(saveInput(t, "1,a\n\n\n2,b\n\n"), DefaultConfig())
	assert.NoError(err)
	assert.True(tbl.Len() == 2)
}

func TestLoadEmptyFile(t *testing.T) {
	assert := assert.New(t)
	tbl, err := Load(saveInput(t, ""), DefaultConfig())
	assert.NoError(err)
	assert.True(tbl.Len() == 0)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file"), DefaultConfig())
	assert.Error(err)
	assert.Contains(err.Error(), "no-such-file")
}

func TestLoadCapacityCeiling(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.MaxRecords = 2
	_, err := Load(saveInput(t, "1,a\n2,b\n3,c\n"), cfg)
	assert.Error(err)
	assert.ErrorIs(err, ErrTooManyRecords)
}

func TestLoadRecordOwnsItsLine(t *testing.T) {
	assert := assert.New(t)
	path := saveInput(t, "1,hello\n")
	tbl, err := Load(path, DefaultConfig())
	assert.NoError(err)

	// the source file region is gone by now, overwriting the file on disk
	// must not disturb already loaded records
	assert.NoError(os.WriteFile(path, []byte("9,zzzzz\n"), 0644))
	assert.Equal("hello", string(tbl.Record(0).Field(1)))
}
