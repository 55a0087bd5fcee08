package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/goharper/pkg/config"
)

// envVarPrefix is the prefix for all goharper environment variables.
const envVarPrefix = "GOHARPER_"

// EnvConfigPath names the config file loaded by the shared library.
const EnvConfigPath = envVarPrefix + "CONFIG"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DIALECT":            {"dialect", envTypeString, "Spelling dialect: american, british, australian or canadian"},
	"LOG_LEVEL":          {"log_level", envTypeString, "Log level: debug, info, warn or error"},
	"FLAVOR":             {"flavor", envTypeString, "Markdown flavor: commonmark or gfm"},
	"FORMAT":             {"format", envTypeString, "Output format: text or json"},
	"JOBS":               {"jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	"IGNORE":             {"ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
	"POISON_RELEASED":    {"bridge.poison_released", envTypeBool, "Report use of released handles: true or false"},
	"MAX_DOCUMENT_BYTES": {"bridge.max_document_bytes", envTypeInt, "Reject larger documents (0 = unlimited)"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOHARPER_ (e.g., GOHARPER_DIALECT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into trimmed, non-empty parts.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "dialect":
		cfg.Dialect = value
	case "log_level":
		cfg.LogLevel = value
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "bridge.poison_released":
		cfg.Bridge.PoisonReleased = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "bridge.max_document_bytes":
		cfg.Bridge.MaxDocumentBytes = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns every supported environment variable sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings)+1)
	vars = append(vars, EnvVar{
		Name:        EnvConfigPath,
		Description: "Config file loaded by the shared library",
	})
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{
			Name:        envVarPrefix + suffix,
			Field:       mapping.field,
			Description: mapping.description,
		})
	}
	slices.SortFunc(vars, func(a, b EnvVar) int { return strings.Compare(a.Name, b.Name) })
	return vars
}
