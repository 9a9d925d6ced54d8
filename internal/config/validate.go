package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/keysinmypurse/purse/internal/secrets"
)

// OutputModes lists the accepted default_output values
var OutputModes = []string{"json", "plain", "rich", "auto"}

// Validate checks a value before it is written to key
func Validate(key, value string) error {
	switch key {
	case "backend":
		if !slices.Contains(secrets.Backends, value) {
			return fmt.Errorf("invalid backend: %s. Valid backends: %s", value, strings.Join(secrets.Backends, ", "))
		}
	case "default_output":
		if !slices.Contains(OutputModes, value) {
			return fmt.Errorf("invalid output mode: %s. Valid modes: %s", value, strings.Join(OutputModes, ", "))
		}
	case "service_name":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("service_name must not be empty")
		}
	}
	return nil
}
