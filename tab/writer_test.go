package tab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	assert := assert.New(t)
	tbl := mkTable(DefaultConfig(), "3,c", "1,a", "2,b")

	// current order, no implicit re-sort
	buf := bytes.Buffer{}
	assert.NoError(Write(tbl, &buf))
	assert.Equal("3,c\n1,a\n2,b\n", buf.String())
}

func TestWriteEmptyTable(t *testing.T) {
	assert := assert.New(t)
	buf := bytes.Buffer{}
	assert.NoError(Write(NewTable(DefaultConfig()), &buf))
	assert.Equal("", buf.String())
}

func TestWriteDropsSurplusColumns(t *testing.T) {
	assert := assert.New(t)

	// the 9th and 10th input columns died at parse time, the writer only
	// ever sees the capped field list
	tbl := mkTable(DefaultConfig(), "1,2,3,4,5,6,7,8,9,10")
	buf := bytes.Buffer{}
	assert.NoError(Write(tbl, &buf))
	assert.Equal("1,2,3,4,5,6,7,8\n", buf.String())
}

func TestWriteCustomDelim(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.Delim = ';'
	tbl := mkTable(cfg, "a;b;c")
	buf := bytes.Buffer{}
	assert.NoError(Write(tbl, &buf))
	assert.Equal("a;b;c\n", buf.String())
}

func TestTableRelease(t *testing.T) {
	assert := assert.New(t)
	tbl := mkTable(DefaultConfig(), "1,a", "2,b")
	assert.True(tbl.Len() == 2)
	tbl.Release()
	assert.True(tbl.Len() == 0)
}
