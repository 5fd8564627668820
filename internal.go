package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFilePath resolves the rolling file location. An explicit LogFilePath wins;
// otherwise the file is <working dir>/logs/<executable>.log.
func (s *Service) logFilePath() (string, error) {
	const op errors.Op = "logging.Service.logFilePath"
	if s.Config.LogFilePath != emptyString {
		return s.Config.LogFilePath, nil
	}

	dir := s.WorkingDir
	if dir == emptyString {
		wd, err := os.Getwd()
		if err != nil {
			return emptyString, errors.New(op).Err(err).Msg(errMsgWorkingDir)
		}
		dir = wd
	}

	exeName, err := utils.ExecName(true)
	if err != nil || exeName == emptyString {
		exeName = defaultExeName
	}

	return filepath.Join(dir, defaultLogDir, exeName+".log"), nil
}

func (s *Service) initializeRollingFileLogger(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.Config.LogFileMaxBackups,
		MaxAge:     s.Config.LogFileMaxAgeDays,
		MaxSize:    s.Config.LogFileMaxSizeMB,
		Compress:   s.Config.LogFileCompress,
	}
}

func (s *Service) consoleWriter() io.Writer {
	out := s.Output
	if out == nil {
		out = os.Stderr
	}
	if s.Config.ConsoleFormat == consoleFormatJSON {
		return out
	}
	cw := zerolog.ConsoleWriter{Out: out, NoColor: s.Config.ConsoleNoColor}
	if s.Config.ConsoleTimeFormat != emptyString {
		cw.TimeFormat = s.Config.ConsoleTimeFormat
	}
	return cw
}

func (s *Service) initializeWriters() ([]io.Writer, error) {
	const op errors.Op = "logging.Service.initializeWriters"
	var writers []io.Writer

	if s.Config.FileLogging {
		path, err := s.logFilePath()
		if err != nil {
			return nil, err
		}
		if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
		}
		s.fileWriter = s.initializeRollingFileLogger(path)
		writers = append(writers, s.fileWriter)
	}
	if s.Config.ConsoleLogging {
		writers = append(writers, s.consoleWriter())
	}
	if len(writers) == 0 {
		return nil, errors.New(op).Msg(errMsgNoChannels)
	}

	return writers, nil
}
