// Package generation defines the AI generation pipeline core: the completion
// client boundary, the prompt builders for each task kind, the structured
// output extractor with its repair strategies, and the error taxonomy shared
// by the pipeline. This package serves as the boundary between the
// application core and external LLM providers, following the hexagonal
// architecture pattern.
package generation
