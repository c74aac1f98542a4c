// Package openai implements the ai service interfaces against
// OpenAI-compatible HTTP APIs via langchaingo. It works with hosted
// OpenAI-style endpoints as well as local servers (Ollama, LocalAI, vLLM).
package openai
