package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironlang/iron/config"
)

func TestInfo_SuppressedByDefault(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, &bytes.Buffer{}, config.Verbosity{})
	s.Info("hello")
	assert.Empty(t, out.String())
}

func TestInfo_PrintedWhenVerbosityInfoSet(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, &bytes.Buffer{}, config.Verbosity{Info: true})
	s.Info("hello %d", 7)
	assert.Contains(t, out.String(), "hello 7")
}

func TestSuccess_GatedTheSameWayAsInfo(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, &bytes.Buffer{}, config.Verbosity{})
	s.Success("built")
	assert.Empty(t, out.String())
}

func TestError_PrintedByDefault(t *testing.T) {
	var errBuf bytes.Buffer
	s := New(&bytes.Buffer{}, &errBuf, config.Verbosity{})
	s.Error(StageEmit, errors.New("boom"))
	assert.Contains(t, errBuf.String(), "[EMIT ERROR] boom")
}

func TestError_SuppressedWhenVerbositySilentSet(t *testing.T) {
	var errBuf bytes.Buffer
	s := New(&bytes.Buffer{}, &errBuf, config.Verbosity{Silent: true})
	s.Error(StageEmit, errors.New("boom"))
	assert.Empty(t, errBuf.String())
}

func TestResult_NotGatedByVerbosity(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, &bytes.Buffer{}, config.Verbosity{})
	s.Result("42")
	assert.Contains(t, out.String(), "42")
}
