package questions

import (
	"fmt"
	"strings"
)

const generateSystemPrompt = `You are an educational assessment expert creating questions that test knowledge of a single topic within a larger subject.

Rules:
- Create 1-3 open-ended questions that test understanding of the given topic.
- Questions must test deep understanding, not just recall.
- Questions must be answerable from the provided content.
- Questions should encourage critical thinking.
- Include a variety of difficulty levels when producing more than one question.`

const gradingSystemPrompt = `You are an expert educational evaluator grading a student's free-text answer.

Evaluate the answer on these criteria:
- Is the answer factually correct?
- Does it demonstrate understanding of the topic?
- Is it complete?
- Does it show critical thinking?

Assign a grade from 0 to 100:
- 0-60: poor understanding
- 61-79: partial understanding
- 80-89: good understanding
- 90-100: excellent understanding

A grade of 80 or above counts as a pass. Feedback should explain strengths and weaknesses and how the answer could be improved.`

// RelatedNode is neighbor context included in the generation prompt.
type RelatedNode struct {
	Label   string
	Content string
}

// NodeContext describes the node questions are generated for.
type NodeContext struct {
	Label    string
	Content  string
	Parents  []RelatedNode
	Children []RelatedNode
}

// buildGenerateMessage constructs the user message for question generation.
func buildGenerateMessage(nc NodeContext, max int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", nc.Label)
	fmt.Fprintf(&b, "Content: %s\n", nc.Content)

	if len(nc.Parents) > 0 {
		b.WriteString("\nThis topic builds on:\n")
		for _, p := range nc.Parents {
			fmt.Fprintf(&b, "- %s: %s\n", p.Label, p.Content)
		}
	}

	if len(nc.Children) > 0 {
		b.WriteString("\nThis topic has the following subtopics:\n")
		for _, c := range nc.Children {
			fmt.Fprintf(&b, "- %s: %s\n", c.Label, c.Content)
		}
	}

	fmt.Fprintf(&b, "\nCreate 1-%d open-ended questions testing understanding of %q.\n", max, nc.Label)

	return b.String()
}

// buildGradingMessage constructs the user message for answer evaluation.
func buildGradingMessage(question, answer, nodeContent string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic content: %s\n\n", nodeContent)
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Student's answer: %s\n", answer)

	return b.String()
}
