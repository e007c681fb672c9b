package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}

	log.Logger = originalLogger
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("blob write failed"))

	if !strings.Contains(buf.String(), "blob write failed") {
		t.Errorf("expected log output to contain the error message, got %s", buf.String())
	}

	log.Logger = originalLogger
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()

	cfg := &config.Config{}
	cfg.Server.LogLevel = "warn"

	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected global level to be warn, got %s", zerolog.GlobalLevel())
	}

	cfg.Server.LogLevel = "not-a-level"
	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected fallback level to be trace, got %s", zerolog.GlobalLevel())
	}

	zerolog.SetGlobalLevel(originalLevel)
}
