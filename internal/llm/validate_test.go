package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-assessment",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"level": map[string]any{
					"type": "string",
					"enum": []any{"struggling", "comfortable", "advanced", "mastery"},
				},
				"confidence": map[string]any{
					"type":    "number",
					"minimum": 0.0,
					"maximum": 1.0,
				},
			},
			"required":             []any{"level", "confidence"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"level":"comfortable","confidence":0.8}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"level":`))
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"level":"advanced"}`))
	if err == nil {
		t.Fatal("expected error for missing confidence")
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"level":"expert","confidence":0.5}`))
	if err == nil {
		t.Fatal("expected error for out-of-enum level")
	}
}

func TestValidateResponse_RangeViolation(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"level":"mastery","confidence":1.5}`))
	if err == nil {
		t.Fatal("expected error for out-of-range confidence")
	}
}

func TestValidateResponse_CachedSchemaReused(t *testing.T) {
	schema := testSchema()
	raw := json.RawMessage(`{"level":"struggling","confidence":0.1}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
