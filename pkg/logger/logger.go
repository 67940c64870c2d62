package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opções para o logger.
type Config struct {
	Env   string // development -> console legível; demais -> JSON
	Level string // trace, debug, info, warn, error; vazio usa o padrão do ambiente
}

// Logger wrapper sobre zerolog para injeção e consistência.
type Logger struct {
	zl zerolog.Logger
}

// horaConsole segue o formato de data das planilhas, para que console e
// células leiam igual durante o desenvolvimento.
const horaConsole = "02-01-2006 15:04:05"

// New cria um logger estruturado. Em development a saída é legível e o nível
// padrão desce para debug; fora dele a saída é JSON com nível info.
func New(cfg Config) *Logger {
	dev := cfg.Env == "development"

	var w io.Writer = os.Stdout
	if dev {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: horaConsole}
	}

	zl := zerolog.New(w).Level(nivel(cfg.Level, dev)).With().Timestamp().Logger()

	// Bibliotecas que escrevem no logger global do zerolog passam pelo mesmo destino.
	log.Logger = zl

	return &Logger{zl: zl}
}

// nivel converte o nome do nível; nomes vazios ou desconhecidos caem no
// padrão do ambiente em vez de silenciar o log.
func nivel(s string, dev bool) zerolog.Level {
	if lv, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil && s != "" {
		return lv
	}
	if dev {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Trace, Debug, Info, Warn, Error delegados ao zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With cria um sublogger com campos fixos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog devolve o logger interno caso a API direta seja necessária.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
