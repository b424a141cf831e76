// Package prompt builds the generation.Request for each analysis mode.
//
// Every mode pairs a system instruction, which casts the model as an explainer,
// debugger, or software architect for the selected language, with a user query
// that states the task, asks for Markdown output, and appends the snippet
// after a "---" separator.
package prompt
