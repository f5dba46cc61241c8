package openai

import (
	"testing"
	"time"
)

func TestNewClientValidation(t *testing.T) {
	cases := []struct {
		name    string
		apiKey  string
		model   string
		wantErr bool
	}{
		{"valid", "sk-test", "gpt-4o-mini", false},
		{"missing_key", "", "gpt-4o-mini", true},
		{"missing_model", "sk-test", "", true},
		{"blank_model", "sk-test", "   ", true},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.apiKey, tt.model, 30*time.Second)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
