package timestamp_test

import (
	"encoding/json"
	"testing"

	"github.com/pytutor-ai/backend/internal/domain/timestamp"
)

func TestJSONRoundTrip(t *testing.T) {
	now := timestamp.Now()

	b, err := json.Marshal(now)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got timestamp.Time
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("expected %v, got %v", now, got)
	}
}

func TestMarshal_Millis(t *testing.T) {
	b, err := json.Marshal(timestamp.FromMillis(1700000000123))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "1700000000123" {
		t.Errorf("expected 1700000000123, got %s", b)
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"integer", "1700000000123", 1700000000123, false},
		{"float", "1700000000123.0", 1700000000123, false},
		{"zero", "0", 0, false},
		{"string", `"yesterday"`, 0, true},
		{"bool", "true", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got timestamp.Time
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == 0 {
				if !got.IsZero() {
					t.Errorf("expected zero time, got %v", got)
				}
				return
			}
			if got.Millis() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got.Millis())
			}
		})
	}
}

func TestUnmarshal_NullKeepsValue(t *testing.T) {
	got := timestamp.FromMillis(42)
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Millis() != 42 {
		t.Errorf("expected 42, got %d", got.Millis())
	}
}
