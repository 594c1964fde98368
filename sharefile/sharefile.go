// Package sharefile reads and writes share documents.
//
// A share document holds the declared share count and threshold under "keys"
// and one entry per share, keyed by its index label:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// The same shape is accepted as JSON, YAML and CBOR. Numeric fields may be
// encoded as numbers or strings. JSON numbers and YAML scalars keep their source
// text, so digit strings are never reinterpreted.
package sharefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/secretfinder/shamir"
)

// Format identifies a share document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

const keysField = "keys"

var (
	// ErrUnsupportedFormat is returned for unknown document formats or file extensions.
	ErrUnsupportedFormat = errors.New("sharefile: unsupported format")

	// ErrInvalidDocument is returned when a document does not have the expected shape.
	ErrInvalidDocument = errors.New("sharefile: invalid document")
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: extension %q of %s", ErrUnsupportedFormat, ext, path)
	}
}

// Load reads a share document from path.
func Load(path string) (shamir.RawShares, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return shamir.RawShares{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return shamir.RawShares{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	raw, err := Parse(data, format)
	if err != nil {
		return shamir.RawShares{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return raw, nil
}

// Parse decodes a share document in the given format.
func Parse(data []byte, format Format) (shamir.RawShares, error) {
	var doc any

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return shamir.RawShares{}, errors.Join(ErrInvalidDocument, err)
		}

	case FormatYAML:
		// decode to nodes so unquoted scalars such as 0755 keep their digits
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return shamir.RawShares{}, errors.Join(ErrInvalidDocument, err)
		}
		doc = fromYAMLNode(&node)

	case FormatCBOR:
		if err := cbor.Unmarshal(data, &doc); err != nil {
			return shamir.RawShares{}, errors.Join(ErrInvalidDocument, err)
		}

	default:
		return shamir.RawShares{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	root, ok := normalize(doc).(map[string]any)
	if !ok {
		return shamir.RawShares{}, fmt.Errorf("%w: document is not a mapping", ErrInvalidDocument)
	}

	return fromDocument(root)
}

// Marshal encodes raw as a share document in the given format.
func Marshal(raw shamir.RawShares, format Format) ([]byte, error) {
	doc := toDocument(raw)

	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")

	case FormatYAML:
		return yaml.Marshal(doc)

	case FormatCBOR:
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, err
		}
		return mode.Marshal(doc)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func fromDocument(root map[string]any) (shamir.RawShares, error) {
	keys, ok := root[keysField].(map[string]any)
	if !ok {
		return shamir.RawShares{}, fmt.Errorf("%w: missing %q object", ErrInvalidDocument, keysField)
	}

	n, err := toInt(keys["n"])
	if err != nil {
		return shamir.RawShares{}, fmt.Errorf("%w: field n: %v", ErrInvalidDocument, err)
	}

	k, err := toInt(keys["k"])
	if err != nil {
		return shamir.RawShares{}, fmt.Errorf("%w: field k: %v", ErrInvalidDocument, err)
	}

	raw := shamir.RawShares{
		N:       n,
		K:       k,
		Entries: make(map[string]shamir.RawShare, len(root)-1),
	}

	for label, value := range root {
		if label == keysField {
			continue
		}

		entry, ok := value.(map[string]any)
		if !ok {
			return shamir.RawShares{}, fmt.Errorf("%w: share %q is not an object", ErrInvalidDocument, label)
		}

		base, err := toText(entry["base"])
		if err != nil {
			return shamir.RawShares{}, fmt.Errorf("%w: share %q base: %v", ErrInvalidDocument, label, err)
		}

		digits, err := toText(entry["value"])
		if err != nil {
			return shamir.RawShares{}, fmt.Errorf("%w: share %q value: %v", ErrInvalidDocument, label, err)
		}

		raw.Entries[label] = shamir.RawShare{Base: base, Value: digits}
	}

	return raw, nil
}

func toDocument(raw shamir.RawShares) map[string]any {
	doc := make(map[string]any, len(raw.Entries)+1)
	doc[keysField] = map[string]any{
		"n": raw.N,
		"k": raw.K,
	}

	for label, entry := range raw.Entries {
		doc[label] = map[string]any{
			"base":  entry.Base,
			"value": entry.Value,
		}
	}

	return doc
}
