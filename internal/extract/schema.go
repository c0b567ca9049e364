package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mausam-code/complete-agency/internal/entity"
)

// customDataSchema constrains the free-form custom_data payload
// accepted on CV generation requests.
var customDataSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"full_name":         map[string]any{"type": "string", "maxLength": 255},
		"email":             map[string]any{"type": "string", "maxLength": 254},
		"phone":             map[string]any{"type": "string", "maxLength": 64},
		"address":           map[string]any{"type": "string", "maxLength": 512},
		"current_position":  map[string]any{"type": "string", "maxLength": 255},
		"company":           map[string]any{"type": "string", "maxLength": 255},
		"experience_years":  map[string]any{"type": "integer", "minimum": 0, "maximum": 80},
		"skills":            map[string]any{"type": "string"},
		"education":         map[string]any{"type": "string"},
		"certifications":    map[string]any{"type": "string"},
		"summary":           map[string]any{"type": "string"},
		"desired_position":  map[string]any{"type": "string", "maxLength": 255},
		"available_from":    map[string]any{"type": "string", "maxLength": 64},
		"expected_salary":   map[string]any{"type": "string", "maxLength": 64},
		"preferred_country": map[string]any{"type": "string", "maxLength": 128},
	},
}

// ValidateCustomData checks a custom_data document against the schema.
func ValidateCustomData(data []byte) error {
	return validateAgainst(customDataSchema, data)
}

// patchSchema constrains the structured record an extraction run is
// allowed to persist. It is looser than customDataSchema: extraction
// also emits open-ended additional data such as dates_found.
var patchSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"full_name":        map[string]any{"type": "string", "maxLength": 255},
		"email":            map[string]any{"type": "string", "maxLength": 254},
		"phone":            map[string]any{"type": "string", "maxLength": 64},
		"address":          map[string]any{"type": "string", "maxLength": 512},
		"current_position": map[string]any{"type": "string", "maxLength": 255},
		"company":          map[string]any{"type": "string", "maxLength": 255},
		"experience_years": map[string]any{"type": "integer", "minimum": 0, "maximum": 80},
		"skills":           map[string]any{"type": "string"},
		"education":        map[string]any{"type": "string"},
		"certifications":   map[string]any{"type": "string"},
		"additional_data":  map[string]any{"type": "object"},
	},
}

// ValidatePatch checks a freshly extracted record before it is persisted.
func ValidatePatch(p entity.FieldPatch) error {
	doc := map[string]any{}
	put := func(key, val string) {
		if val != "" {
			doc[key] = val
		}
	}
	put("full_name", p.FullName)
	put("email", p.Email)
	put("phone", p.Phone)
	put("address", p.Address)
	put("current_position", p.CurrentPosition)
	put("company", p.Company)
	put("skills", p.Skills)
	put("education", p.Education)
	put("certifications", p.Certifications)
	if p.ExperienceYears > 0 {
		doc["experience_years"] = p.ExperienceYears
	}
	if len(p.Additional) > 0 {
		doc["additional_data"] = p.Additional
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}
	return validateAgainst(patchSchema, b)
}

func validateAgainst(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("custom data does not match schema: %w", err)
	}
	return nil
}
