package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ReadsFileIntoBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.iron")
	assert.NoError(t, os.WriteFile(path, []byte("fn main { ret ; }"), 0o644))

	buf, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, path, buf.Path)
	assert.Equal(t, "fn main { ret ; }", string(buf.Bytes))
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.iron"))
	assert.Error(t, err)
}

func TestFromBytes_WrapsInMemoryContent(t *testing.T) {
	buf := FromBytes("<test>", []byte("abc"))
	assert.Equal(t, "<test>", buf.Path)
	assert.Equal(t, 3, buf.Len())
}

func TestSlice_SharesBackingArray(t *testing.T) {
	buf := FromBytes("<test>", []byte("hello"))
	s := buf.Slice(1, 4)
	assert.Equal(t, []byte("ell"), s)
	buf.Bytes[1] = 'E'
	assert.Equal(t, byte('E'), s[0])
}
