package tooldef

// SearchToolName is the reserved name of the search tool. Caller-supplied
// tools must not use it; client construction fails if one does.
const SearchToolName = "tool_search"

type searchToolInput struct {
	Query string `json:"query" jsonschema_description:"A natural language description of the action you want to perform. Be specific — e.g. 'send an email' or 'get weather forecast'."`
}

// SearchTool is the descriptor sent in every outbound tool list. It tells
// the model to search before calling an undiscovered tool and that results
// become callable.
var SearchTool = Tool{
	Name: SearchToolName,
	Description: "Search for available tools by describing what you want to do. " +
		"Use this before attempting to call a tool you haven't discovered yet. " +
		"Returns the names and descriptions of matching tools which will then " +
		"become available for you to use.",
	InputSchema: GenerateSchema[searchToolInput](),
}
