// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drivematch/pkg/types"
)

// conversationFile is the on-disk transcript: an ordered message list.
type conversationFile struct {
	Messages []types.ConversationMessage `json:"messages" yaml:"messages"`
}

// loadConversation reads a transcript file: JSON or YAML by extension,
// anything else as plain text with one user message per non-blank line.
// A --message flag list can substitute for a file; each entry becomes a
// user message in order.
func loadConversation(path string, inline []string) ([]types.ConversationMessage, error) {
	if len(inline) > 0 {
		msgs := make([]types.ConversationMessage, 0, len(inline))
		for _, text := range inline {
			msgs = append(msgs, types.ConversationMessage{Role: types.RoleUser, Text: text})
		}
		return msgs, nil
	}

	if path == "" {
		return nil, fmt.Errorf("conversation required: provide --conversation or --message")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading conversation: %w", err)
	}

	var f conversationFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing conversation YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing conversation JSON: %w", err)
		}
	default:
		for _, line := range strings.Split(string(data), "\n") {
			if text := strings.TrimSpace(line); text != "" {
				f.Messages = append(f.Messages, types.ConversationMessage{Role: types.RoleUser, Text: text})
			}
		}
	}

	if len(f.Messages) == 0 {
		return nil, fmt.Errorf("conversation %s contains no messages", path)
	}
	return f.Messages, nil
}
