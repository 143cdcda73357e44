package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var LocalesFS embed.FS

type Translator struct {
	translations map[string]string
}

// NewTranslator loads locales/<langCode>.yaml from the given filesystem,
// normally LocalesFS. Tests may pass an in-memory fs instead.
func NewTranslator(fsys fs.FS, langCode string) (*Translator, error) {
	filePath := filepath.Join("locales", fmt.Sprintf("%s.yaml", langCode))
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file %s: %w", filePath, err)
	}
	return newTranslatorFromBytes(data)
}

func newTranslatorFromBytes(data []byte) (*Translator, error) {
	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation file: %w", err)
	}
	return &Translator{translations: translations}, nil
}

// T returns the translation for key, formatted with args when provided.
// Unknown keys come back verbatim so a missing entry is visible in chat.
func (t *Translator) T(key string, args ...interface{}) string {
	format, ok := t.translations[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
