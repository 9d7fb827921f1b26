package studio

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var _ Source = (*FileSource)(nil)

// FileSource reads client records from a local YAML or JSON document.
// The file is re-read on every fetch so edits show up on the next poll.
type FileSource struct {
	path string
}

// NewFileSource returns a source backed by path.
func NewFileSource(path string) (*FileSource, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("data file path is empty")
	}
	return &FileSource{path: trimmed}, nil
}

// Path returns the backing file path.
func (s *FileSource) Path() string {
	return s.path
}

// FetchClients parses the file. Both a bare list of records and an
// {items: [...]} document are accepted.
func (s *FileSource) FetchClients(ctx context.Context) ([]ClientRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return decodeClients(data)
}

func decodeClients(data []byte) ([]ClientRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var items []ClientRecord
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode clients: %w", err)
		}
		return items, nil
	case yaml.MappingNode:
		var payload ClientListResponse
		if err := root.Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode clients: %w", err)
		}
		return payload.Items, nil
	default:
		return nil, fmt.Errorf("decode clients: unexpected document kind %d", root.Kind)
	}
}
