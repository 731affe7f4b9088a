package ai

const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Schema is a provider-neutral description of the JSON value a prompt
// must produce. Each provider translates it into its own structured
// output representation, so mode code stays independent of the backend.
type Schema struct {
	Type        string
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// JSONSchema renders the schema as a plain JSON Schema document, the
// format OpenAI-compatible providers take in response_format.
func (s *Schema) JSONSchema() map[string]interface{} {
	if s == nil {
		return nil
	}
	out := map[string]interface{}{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}
