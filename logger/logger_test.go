package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPackageLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Replace(zap.New(core))
	defer Replace(zap.NewNop())

	Info("quote computed", "cruise", "tour-de-corse", "passengers", 4)
	Debug("dropped below level")
	With("payment", "p-1").Warn("gateway slow")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "quote computed", entries[0].Message)
	assert.Equal(t, int64(4), entries[0].ContextMap()["passengers"])
	assert.Equal(t, "p-1", entries[1].ContextMap()["payment"])
}
