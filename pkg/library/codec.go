package library

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Codec converts the record list to and from the bytes of a catalog file.
type Codec interface {
	// Format names the encoding, e.g. "json".
	Format() string
	Encode(records []Record) ([]byte, error)
	Decode(data []byte) ([]Record, error)
}

// CodecFor picks a codec from the file extension. YAML is used for .yaml
// and .yml files, JSON for everything else.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLCodec{Indent: constants.YAMLIndent}
	default:
		return JSONCodec{Indent: constants.JSONIndent}
	}
}

// JSONCodec stores the catalog as an indented JSON array.
type JSONCodec struct {
	Indent string
}

// Format implements Codec.
func (JSONCodec) Format() string { return "json" }

// Encode implements Codec. Non-ASCII text is written as-is.
func (c JSONCodec) Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndentWithOption(records, "", c.Indent, json.DisableHTMLEscape())
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode implements Codec. The top level value must be an array or null.
func (JSONCodec) Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// YAMLCodec stores the catalog as a YAML sequence.
type YAMLCodec struct {
	Indent int
}

// Format implements Codec.
func (YAMLCodec) Format() string { return "yaml" }

// Encode implements Codec.
func (c YAMLCodec) Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	indent := c.Indent
	if indent <= 0 {
		indent = constants.YAMLIndent
	}
	return yaml.MarshalWithOptions(records,
		yaml.Indent(indent),
		yaml.IndentSequence(false),
	)
}

// Decode implements Codec. An empty document decodes to no records.
func (YAMLCodec) Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &records); err != nil {
		return nil, err
	}
	return records, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
