package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwabena-osei/bankledger/internal/logging"
)

func TestInitWithWriterDevelopmentUsesTextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitWithWriter(&buf, "bankctl", "info", "development")

	logger.Info("account created", "account_number", "12345678")

	out := buf.String()
	assert.Contains(t, out, "service=bankctl")
	assert.Contains(t, out, "account_number=12345678")
}

func TestInitWithWriterProductionUsesJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitWithWriter(&buf, "bankctl", "info", "production")

	logger.Info("transfer completed")

	assert.Contains(t, buf.String(), `"service":"bankctl"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitWithWriter(&buf, "bankctl", "warn", "development")

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := logging.WithLogger(context.Background(), logger)
	got := logging.FromContext(ctx)
	require.Same(t, logger, got)

	got.Info("via context")
	assert.Contains(t, buf.String(), "via context")
}
