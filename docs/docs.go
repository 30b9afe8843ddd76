package docs

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var raw []byte

var (
	loaded     *openapi3.T
	loadedErr  error
	loadedOnce sync.Once
)

// YAML returns the embedded document as written.
func YAML() []byte {
	return raw
}

// Load parses and validates the embedded document once.
func Load() (*openapi3.T, error) {
	loadedOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(raw)
		if err != nil {
			loadedErr = fmt.Errorf("load openapi document: %w", err)
			return
		}

		if err := doc.Validate(context.Background()); err != nil {
			loadedErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}

		loaded = doc
	})

	return loaded, loadedErr
}

// JSON renders the document the way /docs serves it.
func JSON() ([]byte, error) {
	doc, err := Load()
	if err != nil {
		return nil, err
	}

	return doc.MarshalJSON()
}
