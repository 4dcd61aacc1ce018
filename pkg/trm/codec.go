package trm

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format tags accepted by DecodeModel and EncodeModel. Selection is always
// explicit; document content is never sniffed.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// DecodeModel parses a model document in the given format. An unknown format
// tag fails with FormatNotProvided; a malformed document fails with
// SyntaxNotValid carrying the decoder's message.
func DecodeModel(text string, format string) (*Model, error) {
	var model Model
	switch format {
	case FormatJSON:
		if err := json.Unmarshal([]byte(text), &model); err != nil {
			return nil, &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
	case FormatTOML:
		if err := toml.Unmarshal([]byte(text), &model); err != nil {
			return nil, &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(text), &model); err != nil {
			return nil, &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
	default:
		return nil, syntaxErrorf(FormatNotProvided, "not provided format: %s", format)
	}
	model.normalize()
	for i := range model.State {
		model.State[i].normalize()
		for j := range model.State[i].Trans {
			model.State[i].Trans[j].normalize()
		}
	}
	return &model, nil
}

// EncodeModel renders a model document in the given format.
func EncodeModel(model *Model, format string) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return "", &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
		return string(out) + "\n", nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(model); err != nil {
			return "", &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
		return buf.String(), nil
	case FormatYAML:
		out, err := yaml.Marshal(model)
		if err != nil {
			return "", &SyntaxError{Kind: SyntaxNotValid, Message: err.Error(), cause: err}
		}
		return string(out), nil
	default:
		return "", syntaxErrorf(FormatNotProvided, "not provided format: %s", format)
	}
}

// FormatFromPath maps a file extension to a format tag. It returns an empty
// string when the extension is not a known model format.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
