package api

import (
	"io"
	"os"
	"testing"
	"town-info-service/internal/platform/logging"
)

func TestMain(m *testing.M) {
	logging.Setup(logging.Config{Level: "warn", Output: io.Discard})
	os.Exit(m.Run())
}
