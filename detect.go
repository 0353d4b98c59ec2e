package x402check

// flatMarkers are the root-level fields that identify a flat-legacy
// document when no accepts list is present.
var flatMarkers = []string{"payTo", "amount", "maxAmountRequired"}

// Detect classifies a configuration document by its structural markers.
// Input may be a JSON string, []byte, json.RawMessage, or an already
// parsed map. Unparseable input classifies as FormatUnrecognized;
// Detect never panics and never returns an error.
func Detect(input any) Format {
	doc, err := parseDocument(input)
	if err != nil {
		return FormatUnrecognized
	}
	return detectFormat(doc)
}

// detectFormat decides the format from top-level key presence alone.
// Field values are never inspected, so a detected document can still
// fail every other rule.
func detectFormat(doc map[string]any) Format {
	if _, ok := doc["accepts"]; ok {
		_, hasVersion := doc["x402Version"]
		_, hasResource := doc["resource"]
		if hasVersion && hasResource {
			return FormatCurrent
		}
		return FormatPrevious
	}

	for _, marker := range flatMarkers {
		if _, ok := doc[marker]; ok {
			return FormatFlatLegacy
		}
	}
	return FormatUnrecognized
}
