package common

import "testing"

func TestStringArrayValueAndScan(t *testing.T) {
	tests := []struct {
		name  string
		input StringArray
		want  string
	}{
		{name: "empty", input: nil, want: "[]"},
		{name: "tokens", input: StringArray{"{{topic}}", "{{audience}}"}, want: `["{{topic}}","{{audience}}"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.input.Value()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, value)
			}

			var scanned StringArray
			if err := scanned.Scan([]byte(value.(string))); err != nil {
				t.Fatalf("unexpected scan error: %v", err)
			}
			if len(scanned) != len(tt.input) {
				t.Fatalf("expected %d items, got %d", len(tt.input), len(scanned))
			}
		})
	}
}

func TestStringArrayScanRejectsUnknownType(t *testing.T) {
	var arr StringArray
	if err := arr.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestStringArrayContains(t *testing.T) {
	arr := StringArray{"a", "b"}
	if !arr.Contains("b") {
		t.Error("expected b to be contained")
	}
	if arr.Contains("c") {
		t.Error("did not expect c to be contained")
	}
}
