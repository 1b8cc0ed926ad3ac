package utils

// ExtractJSONObjects finds all non-overlapping brace-delimited objects in
// LLM output, in order of appearance, including across line breaks.
// Matching is depth-aware and ignores braces inside JSON strings, so a
// nested object is returned whole instead of truncated at the first inner
// closing brace. An opening brace that never closes is stepped over, which
// still lets a balanced object inside it be found.
func ExtractJSONObjects(input string) []string {
	var objects []string

	for i := 0; i < len(input); i++ {
		if input[i] == '{' {
			if extracted := extractBalancedObject(input[i:]); extracted != "" {
				objects = append(objects, extracted)
				i += len(extracted) - 1
			}
		}
	}

	return objects
}

// extractBalancedObject returns the brace-balanced object starting at the
// beginning of input, or "" if the braces never balance.
func extractBalancedObject(input string) string {
	depth := 0
	inString := false
	escape := false

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}

		if ch == '\\' {
			escape = true
			continue
		}

		if ch == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		if ch == '{' {
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 {
				return input[:i+1]
			}
		}
	}

	return ""
}
