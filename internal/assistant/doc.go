// Package assistant is the application core of the code assistant: it turns a
// pasted snippet into a rendered analysis.
//
// Service.Analyze validates the input before anything leaves the process,
// builds the prompt for the selected mode, asks the configured
// generation.Generator for Markdown and renders it to HTML. Failures are
// returned whole; there is no partial result.
package assistant
