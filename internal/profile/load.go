package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/jonathan/resume-generator/internal/schemas"
	"github.com/jonathan/resume-generator/internal/types"
)

// Format is the serialization of a profile file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the file extension. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads a profile file, checks it against the profile schema and
// returns the typed record.
func Load(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Decode(content, FormatFromPath(path))
}

// Decode parses content in the given format, validates the generic
// document against the profile schema, then converts it to a Profile.
// Schema failures are returned as *schemas.ValidationError.
func Decode(content []byte, format Format) (*types.Profile, error) {
	if !utf8.Valid(content) {
		return nil, &LoadError{
			Message: fmt.Sprintf("%s content is not valid UTF-8", strings.ToUpper(string(format))),
		}
	}

	doc, err := decodeGeneric(content, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		return nil, err
	}

	// Round-trip through JSON so every format shares the json struct tags.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to normalize document",
			Cause:   err,
		}
	}

	var p types.Profile
	if err := json.Unmarshal(normalized, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal profile",
			Cause:   err,
		}
	}

	return &p, nil
}

func decodeGeneric(content []byte, format Format) (any, error) {
	var doc any
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(content, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(content, &doc)
	case FormatTOML:
		var table map[string]any
		err = toml.Unmarshal(content, &table)
		doc = table
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}

	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to parse %s", strings.ToUpper(string(format))),
			Cause:   err,
		}
	}

	return doc, nil
}
