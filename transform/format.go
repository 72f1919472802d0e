package transform

import "encoding/json"

type Format string

const FORMAT_N8N Format = "n8n"
const FORMAT_MAKE Format = "make"
const FORMAT_ZAPIER Format = "zapier"
const FORMAT_UNKNOWN Format = "unknown"

// Detect classifies a raw JSON payload by structure alone. An explicit
// format tag inside the payload is never trusted; uploads and generated
// documents routinely carry stale labels.
func Detect(payload []byte) Format {
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return FORMAT_UNKNOWN
	}
	return DetectDocument(doc)
}

// DetectDocument applies the structural discrimination rules to an already
// decoded document.
func DetectDocument(doc map[string]any) Format {
	if _, ok := doc["nodes"].([]any); ok {
		if _, ok := doc["connections"].(map[string]any); ok {
			return FORMAT_N8N
		}
	}
	if _, ok := doc["flow"].([]any); ok {
		return FORMAT_MAKE
	}
	if _, ok := doc["steps"].([]any); ok {
		return FORMAT_ZAPIER
	}
	return FORMAT_UNKNOWN
}
