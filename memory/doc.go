// Package memory provides minimal session persistence for the demo chat.
//
// Persistence model:
//   - Only text messages are stored (role + text). Tool blocks are transient.
//   - Discovered tool names are stored so a resumed session keeps its
//     search results without replaying the rounds that produced them.
package memory
