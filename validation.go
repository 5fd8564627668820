package logging

import (
	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
	"sync"
)

var validate *validator.Validate
var validateErr error
var once sync.Once

// validLevel backs the "loglevel" tag so validation accepts exactly what
// ParseLevel accepts.
func validLevel(fl validator.FieldLevel) bool {
	_, err := ParseLevel(fl.Field().String())
	return err == nil
}

func validateConfig(cfg *Config) error {
	const op errors.Op = "logging.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validateErr = validate.RegisterValidation("loglevel", validLevel)
	})
	if validateErr != nil {
		return errors.New(op).Err(validateErr).Msg(errMsgConfigInvalid)
	}

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if !cfg.ConsoleLogging && !cfg.FileLogging {
		return errors.New(op).Msg(errMsgNoChannels)
	}

	return nil
}
