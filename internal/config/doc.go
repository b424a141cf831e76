// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the CODELENS_ prefix with nested keys joined by
// underscores, e.g. CODELENS_LLM_GEMINI_API_KEY for llm.gemini_api_key.
package config
