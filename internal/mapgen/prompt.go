package mapgen

import (
	"fmt"
	"strings"
)

const rootSystemPrompt = `You are an expert at organizing knowledge into structured, hierarchical mindmaps.`

const expandSystemPrompt = `You are an expert at expanding educational topics into well-structured, comprehensive subtopics.`

// buildRootMessage constructs the user message for root node generation.
func buildRootMessage(topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a root node for an educational mindmap about %q.\n\n", topic)
	b.WriteString("The root node must:\n")
	b.WriteString("- Have a clear, concise label representing the main topic\n")
	b.WriteString("- Include a comprehensive but concise content description (100-300 characters)\n")
	b.WriteString(`- Use the ID "1"` + "\n")
	b.WriteString("- Have no parent_id (it is the root)\n\n")
	b.WriteString("Return just this single root node.\n")

	return b.String()
}

// buildExpandMessage constructs the user message for child node generation.
func buildExpandMessage(parentID, parentLabel, parentContent string, maxChildren int) string {
	var b strings.Builder

	b.WriteString("Expand the following mindmap node with child nodes.\n\n")
	fmt.Fprintf(&b, "ID: %s\n", parentID)
	fmt.Fprintf(&b, "Label: %q\n", parentLabel)
	fmt.Fprintf(&b, "Content: %q\n\n", parentContent)

	fmt.Fprintf(&b, "Create %d child nodes that expand on this topic in a logical and educational way.\n", maxChildren)
	b.WriteString("Each child node explores a specific aspect, component, or subtopic of the parent concept.\n\n")
	b.WriteString("Each child node needs:\n")
	fmt.Fprintf(&b, "1. A unique id using the parent id as a prefix (parent %q gets children %q, %q, ...)\n",
		parentID, parentID+".1", parentID+".2")
	b.WriteString("2. A short, clear label (max 50 characters)\n")
	b.WriteString("3. Content explaining the concept in more detail (100-300 characters)\n")
	fmt.Fprintf(&b, "4. The parent_id reference, which must be %q\n\n", parentID)
	b.WriteString("The child nodes must be distinct from each other, directly related to the parent topic, and together cover the parent topic comprehensively.\n")

	return b.String()
}
