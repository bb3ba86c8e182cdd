package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("BRT", -3*60*60)
	log := NewWithWriter(&buf, "debug", loc)

	log.WithField("component", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(&buf, "nonsense", nil)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("dropped")
	assert.Empty(t, buf.String())

	log = NewWithWriter(&buf, "warn", time.UTC)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
