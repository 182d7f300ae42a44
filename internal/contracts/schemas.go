package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/schemas"
)

// Ключи зарегистрированных схем контентных документов.
const (
	KindPropertyRecord = "PropertyRecord/v1"
	KindBlogArticle    = "BlogArticle/v1"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы, чтобы они могли
	// ссылаться друг на друга через `$ref`
	err := fs.WalkDir(schemas.DocumentsFS, "documents", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemas.DocumentsFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemas.DocumentsFS, "documents", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "documents/property-record/v1.json"
// в ключ вида "PropertyRecord/v1".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, "documents/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	for i, part := range nameParts {
		nameParts[i] = caser.String(part)
	}

	return strings.Join(nameParts, "") + "/" + parts[1]
}

// ValidateDocument проверяет сырой JSON-документ по зарегистрированной
// схеме. Возвращает ошибку и для невалидного JSON, и для нарушения схемы.
func ValidateDocument(kind string, raw []byte) error {
	schema, ok := compiledSchemas[kind]
	if !ok {
		return fmt.Errorf("no schema registered for kind %q", kind)
	}

	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("document violates schema %s: %w", kind, err)
	}
	return nil
}
