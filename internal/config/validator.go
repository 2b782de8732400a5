package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the loaded configuration and reports every bad key at once
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s (%s=%v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}

// Warnings returns non-fatal issues, such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsesPostgres() && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.AdminAPIKey == ExampleAdminAPIKey {
		warnings = append(warnings, "ADMIN_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.AdminAPIKey == "" && c.Environment != DefaultEnvironment {
		warnings = append(warnings, "ADMIN_API_KEY is not set - tree create, update and delete are open to everyone")
	}

	return warnings
}
