package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func loadFromFile(conf *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return unmarshalJSON(data, conf)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(conf)
	default:
		return fmt.Errorf("unsupported file extension %s for file %s", ext, filename)
	}
}

func unmarshalJSON(data []byte, conf *Config) error {
	// durations are written as strings ("30s") but decode from nanoseconds
	var rawData map[string]any
	if err := json.Unmarshal(data, &rawData); err != nil {
		return err
	}

	if err := processDurationFields(rawData, reflect.ValueOf(conf).Elem()); err != nil {
		return err
	}

	processedData, err := json.Marshal(rawData)
	if err != nil {
		return fmt.Errorf("failed to marshal processed data: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(processedData))
	dec.DisallowUnknownFields()
	return dec.Decode(conf)
}

func processDurationFields(data map[string]any, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		name := strings.Split(fieldType.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		fieldData, exists := data[name]
		if !exists {
			continue
		}

		switch {
		case field.Type() == durationType:
			if strVal, ok := fieldData.(string); ok {
				duration, err := time.ParseDuration(strVal)
				if err != nil {
					return fmt.Errorf("invalid duration value %q for field %s: %w", strVal, fieldType.Name, err)
				}
				data[name] = int64(duration)
			}
		case field.Kind() == reflect.Struct:
			if nestedMap, ok := fieldData.(map[string]any); ok {
				if err := processDurationFields(nestedMap, field); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
