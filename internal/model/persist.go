package model

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Artifact file names under the model directory.
const (
	vectorizerFile = "vectorizer.gob"
	classifierFile = "classifier.gob"
	labelsFile     = "labels.gob"
	manifestFile   = "manifest.json"
)

type manifest struct {
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	Labels         []string  `json:"labels"`
	VocabularySize int       `json:"vocabulary_size"`
}

const manifestSchema = `{
	"type": "object",
	"required": ["version", "created_at", "labels", "vocabulary_size"],
	"additionalProperties": false,
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"created_at": {"type": "string"},
		"labels": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"vocabulary_size": {"type": "integer", "minimum": 1}
	}
}`

// Save persists the trained triple plus a manifest under dir.
func (m *Model) Save(dir string) error {
	if !m.Fitted() {
		return ErrNotFitted
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	if err := writeGob(filepath.Join(dir, vectorizerFile), m.Vectorizer); err != nil {
		return err
	}
	if err := writeGob(filepath.Join(dir, classifierFile), m.Estimators); err != nil {
		return err
	}
	if err := writeGob(filepath.Join(dir, labelsFile), m.Binarizer); err != nil {
		return err
	}

	man := manifest{
		Version:        1,
		CreatedAt:      time.Now().UTC(),
		Labels:         m.Binarizer.Classes,
		VocabularySize: len(m.Vectorizer.IDF),
	}
	raw, err := json.MarshalIndent(man, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, manifestFile), raw, 0o644)
}

// Load reads a previously saved triple from dir and returns a fitted model.
// The manifest is schema-validated before the blobs are trusted.
func Load(dir string) (*Model, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if err := validateManifest(raw); err != nil {
		return nil, fmt.Errorf("manifest invalid: %w", err)
	}
	var man manifest
	if err := json.Unmarshal(raw, &man); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	m := &Model{Vectorizer: &Vectorizer{}, Binarizer: &Binarizer{}}
	if err := readGob(filepath.Join(dir, vectorizerFile), m.Vectorizer); err != nil {
		return nil, err
	}
	if err := readGob(filepath.Join(dir, classifierFile), &m.Estimators); err != nil {
		return nil, err
	}
	if err := readGob(filepath.Join(dir, labelsFile), m.Binarizer); err != nil {
		return nil, err
	}

	if len(m.Binarizer.Classes) != len(man.Labels) || len(m.Estimators) != len(m.Binarizer.Classes) {
		return nil, fmt.Errorf("model artifacts inconsistent with manifest")
	}
	m.fitted = true
	return m, nil
}

func validateManifest(raw []byte) error {
	sch, err := jsonschema.CompileString("manifest.schema.json", manifestSchema)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return sch.Validate(doc)
}

func writeGob(path string, v any) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readGob(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
