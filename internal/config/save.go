package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveLabels writes the non-empty labels into the labels section of the
// config file. Other keys, including their comments, are left untouched by
// editing the yaml.Node tree in place.
func SaveLabels(configPath string, labels LabelsConfig) error {
	_, updated, err := EditLabels(configPath, labels)
	if err != nil {
		return err
	}
	return writeAtomic(configPath, updated)
}

// EditLabels returns the config file's current contents and the contents
// SaveLabels would write, without touching the file.
func EditLabels(configPath string, labels LabelsConfig) (current, updated []byte, err error) {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("parsing config: top level is not a mapping")
	}

	labelsNode := mappingChild(doc.Content[0], "labels")
	for _, kv := range []struct{ key, value string }{
		{"search", labels.Search},
		{"empty", labels.Empty},
		{"invalid_length", labels.InvalidLength},
	} {
		if kv.value != "" {
			setScalar(labelsNode, kv.key, kv.value)
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return data, buf.Bytes(), nil
}

// mappingChild returns the mapping stored under key in parent, creating it
// (or replacing a non-mapping value) when needed.
func mappingChild(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value == key {
			child := parent.Content[i+1]
			if child.Kind != yaml.MappingNode {
				child = &yaml.Node{Kind: yaml.MappingNode}
				parent.Content[i+1] = child
			}
			return child
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return child
}

// setScalar sets key to value in mapping, keeping any line comment.
func setScalar(mapping *yaml.Node, key, value string) {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			node := mapping.Content[i+1]
			node.Kind = yaml.ScalarNode
			node.Tag = "!!str"
			node.Value = value
			node.Style = 0
			node.Content = nil
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

// writeAtomic writes data to a temp file next to path and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".leifetch.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
