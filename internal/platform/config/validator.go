package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate, trans, nil
}

// Validate checks the loaded configuration and reports every failing field
// in one error.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate configuration: %w", err)
		}
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fmt.Sprintf("%s: %s", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Translate(trans)))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	if c.Storage.Driver == DriverRedis && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("invalid configuration: storage.redis.addr is required when storage.driver is redis")
	}
	return nil
}
