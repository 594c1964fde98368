package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

func getFieldTagName(fieldType reflect.StructField) string {
	yamlTag := fieldType.Tag.Get("yaml")
	if yamlTag != "" && yamlTag != "-" {
		return strings.Split(yamlTag, ",")[0]
	}
	return strings.ToLower(fieldType.Name)
}

// loadFromEnv overrides fields from PREFIX_<TAG> variables; nested structs
// extend the prefix with their own tag, e.g. SECRETFINDER_LOGGER_LEVEL.
func loadFromEnv(v reflect.Value, prefix string) error {
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		envKey := prefix + "_" + strings.ToUpper(getFieldTagName(fieldType))

		if field.Kind() == reflect.Struct {
			if err := loadFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}

		if err := setValueFromString(field, envValue); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envKey, err)
		}
	}

	return nil
}
