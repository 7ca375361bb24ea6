// Package tooldef defines provider-agnostic tool definitions.
//
// Includes:
//   - Tool: name, description, JSON-Schema input tree.
//   - Both schema key conventions on decode: inputSchema (MCP) and
//     input_schema (Anthropic); camelCase wins when both are present.
//   - GenerateSchema[T](): derive a JSON Schema tree from Go structs.
//   - SearchTool: the reserved tool_search descriptor.
//   - FromMCP: ingest MCP SDK tool definitions.
package tooldef
