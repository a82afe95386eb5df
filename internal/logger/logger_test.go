package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("release", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		var buf bytes.Buffer
		l := New(&buf)

		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
		l.WithField("component", "test").Info("hello")
		assert.Contains(t, buf.String(), `"component":"test"`)
	})

	t.Run("debug", func(t *testing.T) {
		t.Setenv("GIN_MODE", "debug")
		l := New(&bytes.Buffer{})
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	})
}

func TestSetLevel(t *testing.T) {
	l := New(&bytes.Buffer{})

	require.NoError(t, SetLevel(l, ""))
	require.NoError(t, SetLevel(l, "warn"))
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	require.Error(t, SetLevel(l, "loud"))
}
