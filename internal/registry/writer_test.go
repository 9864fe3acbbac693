package registry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func sampleAggregator() *Aggregator {
	agg := NewAggregator(DedupGlobal)
	agg.Record(autoConfigureKey, "com.example.AppConfig")
	agg.Record(autoConfigureKey, "com.example.WebConfig")
	agg.Record(feignKey, "com.example.UserClient")

	return agg
}

func TestWriteRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegistry(&buf, sampleAggregator(), FormatOptions{}))

	expected := autoConfigureKey + "=com.example.AppConfig,com.example.WebConfig\n" +
		feignKey + "=com.example.UserClient\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteRegistry_SingleConfiguration(t *testing.T) {
	agg := NewAggregator(DedupGlobal)
	agg.Record(autoConfigureKey, "com.example.AppConfig")

	var buf bytes.Buffer
	require.NoError(t, WriteRegistry(&buf, agg, FormatOptions{}))
	assert.Equal(t, "org.springframework.boot.autoconfigure.EnableAutoConfiguration=com.example.AppConfig\n", buf.String())
}

func TestWriteRegistry_Continuation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegistry(&buf, sampleAggregator(), FormatOptions{Continuation: true}))

	expected := autoConfigureKey + "=\\\n  com.example.AppConfig,\\\n  com.example.WebConfig\n" +
		feignKey + "=\\\n  com.example.UserClient\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteRegistry_Deterministic(t *testing.T) {
	agg := sampleAggregator()

	var first, second bytes.Buffer
	require.NoError(t, WriteRegistry(&first, agg, FormatOptions{}))
	require.NoError(t, WriteRegistry(&second, agg, FormatOptions{}))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteRegistry_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegistry(&buf, NewAggregator(DedupGlobal), FormatOptions{}))
	assert.Empty(t, buf.String())
}

func TestWriteRegistry_WriteError(t *testing.T) {
	err := WriteRegistry(failingWriter{}, sampleAggregator(), FormatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteDevToolsMarker(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDevToolsMarker(&buf, "mica-example"))
	assert.Equal(t, `restart.exclude.mica-example=/mica-example[\\w-]+\\.jar`+"\n", buf.String())

	assert.ErrorIs(t, WriteDevToolsMarker(&buf, " "), ErrEmptyProject)
	assert.Error(t, WriteDevToolsMarker(failingWriter{}, "mica-example"))
}
