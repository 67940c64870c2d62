package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hexastock/hexastock-api/pkg/logger"
)

func TestNew_NivelExplicito(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelPadraoPorAmbiente(t *testing.T) {
	dev := logger.New(logger.Config{Env: "development"})
	assert.Equal(t, zerolog.DebugLevel, dev.Zerolog().GetLevel(), "development sem LOG_LEVEL loga debug")

	prod := logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, prod.Zerolog().GetLevel())
}

func TestNew_NivelDesconhecidoCaiNoPadrao(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "barulhento"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nome inválido não pode silenciar o log")
}
