package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestFromContext_CarriesFields(t *testing.T) {
	require.NoError(t, Init(Config{Level: "debug", Format: "json"}))

	var buf bytes.Buffer
	L().SetOutput(&buf)
	defer L().SetOutput(logrus.StandardLogger().Out)

	ctx := WithFields(context.Background(), logrus.Fields{"request_id": "abc"})
	ctx = WithFields(ctx, logrus.Fields{"path": "/api/books"})
	FromContext(ctx).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, "/api/books", line["path"])
	assert.Equal(t, "hello", line["msg"])
}

func TestFromContext_NoFields(t *testing.T) {
	entry := FromContext(context.Background())
	assert.Empty(t, entry.Data)
}
