package validate

import (
	"testing"
)

func TestAsObject(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{
			name:  "mapping",
			input: map[string]any{"a": 1},
		},
		{
			name:    "nil input",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "array",
			input:   []any{1, 2},
			wantErr: true,
		},
		{
			name:    "scalar",
			input:   "hello",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AsObject(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AsObject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != "Input must be an object" {
				t.Errorf("AsObject() error = %q, want %q", err.Error(), "Input must be an object")
			}
		})
	}
}

func TestStringField(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		field   string
		want    string
		wantMsg string
	}{
		{
			name:   "present string",
			fields: map[string]any{"sentiment": "positive"},
			field:  "sentiment",
			want:   "positive",
		},
		{
			name:    "missing field",
			fields:  map[string]any{},
			field:   "sentiment",
			wantMsg: "sentiment is required",
		},
		{
			name:    "wrong primitive type",
			fields:  map[string]any{"sentiment": float64(3)},
			field:   "sentiment",
			wantMsg: "sentiment must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringField(tt.fields, tt.field)
			if tt.wantMsg != "" {
				if err == nil {
					t.Fatal("StringField() expected error")
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("StringField() error = %q, want %q", err.Error(), tt.wantMsg)
				}
				if err.Field != tt.field {
					t.Errorf("StringField() error field = %q, want %q", err.Field, tt.field)
				}
				return
			}
			if err != nil {
				t.Fatalf("StringField() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("StringField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnumField(t *testing.T) {
	allowed := []string{"low", "medium", "high"}

	tests := []struct {
		name    string
		fields  map[string]any
		want    string
		wantMsg string
	}{
		{
			name:   "in domain",
			fields: map[string]any{"urgency": "medium"},
			want:   "medium",
		},
		{
			name:    "out of domain",
			fields:  map[string]any{"urgency": "urgent"},
			wantMsg: "urgency must be one of: low, medium, high",
		},
		{
			name:    "missing",
			fields:  map[string]any{},
			wantMsg: "urgency is required",
		},
		{
			name:    "wrong type",
			fields:  map[string]any{"urgency": true},
			wantMsg: "urgency must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnumField(tt.fields, "urgency", allowed)
			if tt.wantMsg != "" {
				if err == nil {
					t.Fatal("EnumField() expected error")
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("EnumField() error = %q, want %q", err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("EnumField() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EnumField() = %q, want %q", got, tt.want)
			}
		})
	}
}
