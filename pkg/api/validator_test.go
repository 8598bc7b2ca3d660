package api

import (
	"strings"
	"testing"
)

func TestCraftPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload CraftPayload
		wantErr bool
	}{
		{"valid", CraftPayload{Recipe: "campfire"}, false},
		{"empty", CraftPayload{}, true},
		{"too long", CraftPayload{Recipe: strings.Repeat("a", 65)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdminPayloads_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload Validator
		wantErr bool
	}{
		{"vitals ok", AdminVitalsPayload{Health: 100, Stamina: 50, Temperature: 10, Hunger: 50}, false},
		{"vitals over max", AdminVitalsPayload{Health: 101}, true},
		{"vitals negative", AdminVitalsPayload{Hunger: -1}, true},
		{"spawn ok", AdminSpawnPayload{Kind: "elite", X: 3}, false},
		{"spawn no kind", AdminSpawnPayload{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
