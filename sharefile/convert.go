package sharefile

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fromYAMLNode converts a YAML node tree to maps, slices and strings. Scalars
// keep their literal text; null scalars become nil.
func fromYAMLNode(node *yaml.Node) any {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return fromYAMLNode(node.Content[0])

	case yaml.MappingNode:
		result := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			result[node.Content[i].Value] = fromYAMLNode(node.Content[i+1])
		}
		return result

	case yaml.SequenceNode:
		result := make([]any, len(node.Content))
		for i, item := range node.Content {
			result[i] = fromYAMLNode(item)
		}
		return result

	case yaml.AliasNode:
		if node.Alias == nil {
			return nil
		}
		return fromYAMLNode(node.Alias)

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}
		return node.Value

	default:
		return nil
	}
}

// normalize converts decoded maps to map[string]any recursively.
// YAML and CBOR decode non-string keys into map[any]any.
func normalize(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for key, item := range value {
			value[key] = normalize(item)
		}
		return value

	case map[any]any:
		result := make(map[string]any, len(value))
		for key, item := range value {
			result[fmt.Sprint(key)] = normalize(item)
		}
		return result

	default:
		return v
	}
}

func toInt(v any) (int, error) {
	switch value := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing")
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case uint64:
		if value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of range", value)
		}
		return int(value), nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("value %v is not an integer", value)
		}
		return int(value), nil
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(value))
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func toText(v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", fmt.Errorf("missing")
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case int, int64, uint64:
		return fmt.Sprint(value), nil
	case big.Int:
		return value.String(), nil
	case *big.Int:
		return value.String(), nil
	case float32, float64:
		// floats cannot carry arbitrary digit strings
		return "", fmt.Errorf("floating point value %v", value)
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}
