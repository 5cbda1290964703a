package http

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"hvac-estimator/domain"
)

func enumValues[T ~string](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func mustCompile(name string, schema map[string]interface{}) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return s
}

// Request schemas check shape and vocabulary. Numeric ranges are left to
// the estimator so they surface as field-level validation errors.
var (
	loadRequestSchema = mustCompile("load", map[string]interface{}{
		"type": "object",
		"required": []interface{}{
			"squareFootage", "insulationLevel", "windowCount",
			"homeAgeBracket", "climateZone", "propertyType",
		},
		"properties": map[string]interface{}{
			"squareFootage":   map[string]interface{}{"type": "number"},
			"ceilingHeightFt": map[string]interface{}{"type": "number"},
			"insulationLevel": map[string]interface{}{"type": "string", "enum": enumValues(domain.AllInsulationLevels())},
			"windowCount":     map[string]interface{}{"type": "integer"},
			"homeAgeBracket":  map[string]interface{}{"type": "string", "enum": enumValues(domain.AllHomeAges())},
			"climateZone":     map[string]interface{}{"type": "string", "enum": enumValues(domain.AllClimateZones())},
			"propertyType":    map[string]interface{}{"type": "string", "enum": enumValues(domain.AllPropertyTypes())},
		},
		"additionalProperties": false,
	})

	costRequestSchema = mustCompile("cost", map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"propertyType", "squareFootage", "systemType"},
		"properties": map[string]interface{}{
			"propertyType":     map[string]interface{}{"type": "string", "enum": enumValues(domain.AllPropertyTypes())},
			"squareFootage":    map[string]interface{}{"type": "number"},
			"systemAgeBracket": map[string]interface{}{"type": "string", "enum": enumValues(domain.AllAgeBrackets())},
			"systemAgeYears":   map[string]interface{}{"type": "integer"},
			"systemType":       map[string]interface{}{"type": "string", "enum": enumValues(domain.AllSystemSelectors())},
		},
		"additionalProperties": false,
	})

	savingsRequestSchema = mustCompile("savings", map[string]interface{}{
		"type": "object",
		"required": []interface{}{
			"heatingCost", "coolingCost", "currentSystemType",
			"currentSystemAgeYears", "targetSystemType",
		},
		"properties": map[string]interface{}{
			"heatingCost":           map[string]interface{}{"type": "number"},
			"coolingCost":           map[string]interface{}{"type": "number"},
			"currentSystemType":     map[string]interface{}{"type": "string", "enum": enumValues(domain.AllSystemTypes())},
			"currentSystemAgeYears": map[string]interface{}{"type": "integer"},
			"targetSystemType":      map[string]interface{}{"type": "string", "enum": enumValues(domain.UpgradeTargets())},
		},
		"additionalProperties": false,
	})
)

// schemaErrors returns one message per violation, or nil when body conforms.
func schemaErrors(schema *gojsonschema.Schema, body []byte) ([]string, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}
