// Package browser exposes the bridge's interaction primitives as agent
// tools.
//
// Every tool is a thin caller of the two handles the bridge manager
// provides. Coordinate and text primitives (click, type, drag, scroll)
// go through the protocol client's named tool calls with structured
// arguments; page primitives (navigate, evaluate, read) use the page
// handle directly. None of the tools touch lifecycle state: requesting
// a handle is what triggers port allocation, browser launch and client
// registration on first use.
//
// Tool results follow one normalized contract: the protocol client's
// content blocks are flattened to text, and a tool-level error flag
// becomes a Go error. A caller therefore sees either a plain text
// result or a failure, never a partial structure.
package browser
