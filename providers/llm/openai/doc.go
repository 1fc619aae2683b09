// Package openai is the upstream model-invocation wrapper: a minimal client
// for OpenAI-compatible chat-completions endpoints that turns a prompt (plus
// an optional schema constraint) into raw JSON text for the deserialization
// core. It owns the credentials and endpoint configuration surface; the core
// treats its output as opaque input.
package openai
