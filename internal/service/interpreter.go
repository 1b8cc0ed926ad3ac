package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"urbandash/internal/metrics"
	"urbandash/internal/model"
	"urbandash/internal/utils"
)

const metersPerFoot = 0.3048

const promptTemplate = `Extract a JSON filter from this request: "%s"

Respond ONLY with the JSON object. The format should include:
- "attribute" (e.g. "height", "zoning", "value", "area")
- "operator" (e.g. ">", "<", "==")
- "value" (e.g. 100, "RC-G", 500000)

If the query mentions "feet", assume it refers to building height and convert feet to meters (1 foot = 0.3048 meters). Use "height" as the attribute in that case.`

// QueryInterpreter turns natural language queries into structured building
// filters using an LLM
type QueryInterpreter struct {
	generator TextGenerator
}

// NewQueryInterpreter creates a new query interpreter
func NewQueryInterpreter(generator TextGenerator) *QueryInterpreter {
	return &QueryInterpreter{
		generator: generator,
	}
}

// Interpret extracts a structured filter from a natural language query.
// Every failure collapses to the zero Filter here; callers decide what an
// empty filter means at their boundary.
func (qi *QueryInterpreter) Interpret(ctx context.Context, query string) model.Filter {
	start := time.Now()
	metrics.QueriesTotal.Inc()

	filter, err := qi.interpret(ctx, query)
	metrics.QueryDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		log.Printf("LLM interpretation failed: %v, returning empty filter", err)
		filter = model.Filter{}
	}
	if !filter.Valid() {
		metrics.EmptyFiltersTotal.Inc()
	}

	return filter
}

// interpret runs the full pipeline and keeps failure causes apart for logs
// and tests
func (qi *QueryInterpreter) interpret(ctx context.Context, query string) (model.Filter, error) {
	prompt := fmt.Sprintf(promptTemplate, query)

	text, err := qi.generator.Generate(ctx, prompt)
	if err != nil {
		return model.Filter{}, fmt.Errorf("inference call failed: %w", err)
	}
	log.Printf("Raw generated text: %s", text)

	for _, block := range utils.ExtractJSONObjects(text) {
		var candidate map[string]any
		if err := json.Unmarshal([]byte(block), &candidate); err != nil {
			continue
		}
		if !qualifies(candidate) {
			continue
		}
		return buildFilter(query, candidate)
	}

	return model.Filter{}, fmt.Errorf("no valid filter found in any JSON block")
}

// qualifies reports whether a candidate carries all three filter keys with a
// non-null value. The first qualifying candidate wins; later ones are never
// inspected.
func qualifies(candidate map[string]any) bool {
	for _, key := range []string{"attribute", "operator", "value"} {
		v, ok := candidate[key]
		if !ok {
			return false
		}
		if key == "value" && v == nil {
			return false
		}
	}
	return true
}

// buildFilter normalizes the winning candidate into a typed Filter
func buildFilter(query string, candidate map[string]any) (model.Filter, error) {
	filter := model.Filter{
		Value: candidate["value"],
	}
	filter.Attribute, _ = candidate["attribute"].(string)
	filter.Operator, _ = candidate["operator"].(string)

	// Queries phrased in feet are height filters with the value converted
	// to meters
	if strings.Contains(strings.ToLower(query), "feet") && filter.Attribute == "height" {
		num, ok := filter.Value.(float64)
		if !ok {
			return model.Filter{}, fmt.Errorf("feet conversion needs a numeric value, got %T", filter.Value)
		}
		filter.Value = math.Round(num*metersPerFoot*100) / 100
	}

	// Zoning codes that are plain digit strings become integers
	if filter.Attribute == "zoning" {
		if s, ok := filter.Value.(string); ok && isDigits(s) {
			if converted, err := strconv.Atoi(s); err == nil {
				filter.Value = converted
			}
		}
	}

	return filter, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
