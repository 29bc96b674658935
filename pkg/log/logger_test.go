package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite tests the log package.
type LoggerTestSuite struct {
	suite.Suite
	originalLogger zerolog.Logger
	testOutput     *bytes.Buffer
}

// SetupTest runs before each test.
func (s *LoggerTestSuite) SetupTest() {
	s.originalLogger = Logger

	s.testOutput = &bytes.Buffer{}
	Logger = zerolog.New(s.testOutput).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// TearDownTest runs after each test.
func (s *LoggerTestSuite) TearDownTest() {
	Logger = s.originalLogger
}

// TestLevels tests that each level helper emits at its level.
func (s *LoggerTestSuite) TestLevels() {
	Info().Msg("info message")
	s.Contains(s.testOutput.String(), `"level":"info"`)
	s.Contains(s.testOutput.String(), "info message")

	s.testOutput.Reset()
	Warn().Msg("warn message")
	s.Contains(s.testOutput.String(), `"level":"warn"`)

	s.testOutput.Reset()
	Error().Msg("error message")
	s.Contains(s.testOutput.String(), `"level":"error"`)

	s.testOutput.Reset()
	Debug().Msg("debug message")
	s.Contains(s.testOutput.String(), `"level":"debug"`)
}

// TestWithComponent tests the component-tagged child logger.
func (s *LoggerTestSuite) TestWithComponent() {
	child := With("resolver")
	child.Info().Msg("tagged")

	output := s.testOutput.String()
	s.Contains(output, `"component":"resolver"`)
	s.Contains(output, "tagged")
}

// TestSetDebugMode tests the level switch.
func (s *LoggerTestSuite) TestSetDebugMode() {
	Logger = Logger.Level(zerolog.InfoLevel)
	Debug().Msg("suppressed")
	s.False(strings.Contains(s.testOutput.String(), "suppressed"))

	SetDebugMode()
	Debug().Msg("visible")
	s.Contains(s.testOutput.String(), "visible")
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
