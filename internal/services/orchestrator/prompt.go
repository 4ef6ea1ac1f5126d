package orchestrator

import (
	"fmt"
)

// systemInstruction establishes the output contract with the model. The
// response must be directly parseable JSON; no fence stripping is applied
// before parsing.
const systemInstruction = `You translate user requests into database operations for an item collection.
Each item has exactly two fields: "name" and "description".

Respond with strict JSON only. No markdown, no code fences, no explanations, no prose.

The response must be a single JSON object with this exact shape:
{
  "totalOperations": <total number of operations>,
  "operations": [
    { "action": "create", "data": { "name": "<name>", "description": "<description>" } },
    { "action": "read", "filter": { "name": "<name to match>" } },
    { "action": "update", "filter": { "name": "<name to match>" }, "data": { "description": "<new description>" } },
    { "action": "delete", "filter": { "name": "<name to match>" } }
  ]
}

Rules:
- "action" is one of: "create", "read", "update", "delete".
- "create" requires "data" with both "name" and "description".
- "read", "update" and "delete" take an optional "filter"; an empty or missing filter matches every item.
- "update" requires "data" carrying only the fields to change.
- Name filters match as a case-insensitive substring.
- Order operations exactly as the user request implies.`

// buildPrompt wraps the user query for the model call.
func buildPrompt(query string) string {
	return fmt.Sprintf("User request: %s", query)
}
