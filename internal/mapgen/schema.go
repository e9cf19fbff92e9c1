package mapgen

import "github.com/abhisek/mindweave/internal/llm"

func nodeItemSchema(requireParent bool) map[string]any {
	required := []any{"id", "label", "content"}
	if requireParent {
		required = append(required, "parent_id")
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Unique identifier for the node",
			},
			"label": map[string]any{
				"type":        "string",
				"description": "Short title for the node (max 50 chars)",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Detailed explanation of the concept (100-300 chars)",
			},
			"parent_id": map[string]any{
				"type":        "string",
				"description": "ID of the parent node, empty for the root node",
			},
		},
		"required":             required,
		"additionalProperties": false,
	}
}

// RootSchema defines the JSON schema for root node generation.
var RootSchema = &llm.Schema{
	Name:        "create-mindmap",
	Description: "Create a hierarchical mindmap structure about a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nodes": map[string]any{
				"type":        "array",
				"description": "List of nodes in the mindmap hierarchy",
				"items":       nodeItemSchema(false),
			},
		},
		"required":             []any{"nodes"},
		"additionalProperties": false,
	},
}

// ChildrenSchema defines the JSON schema for child node generation.
var ChildrenSchema = &llm.Schema{
	Name:        "create-child-nodes",
	Description: "Create child nodes for a specified parent node in a mindmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nodes": map[string]any{
				"type":        "array",
				"description": "List of child nodes to add to the parent",
				"items":       nodeItemSchema(true),
			},
		},
		"required":             []any{"nodes"},
		"additionalProperties": false,
	},
}
