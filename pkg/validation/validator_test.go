package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name" validate:"required,nodename"`
	Size  int      `yaml:"size" validate:"min=1,max=10"`
	Kind  string   `yaml:"kind" validate:"oneof=grid graph"`
	Items []string `yaml:"items,omitempty" validate:"dive,nodename"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{"valid", sample{Name: "a", Size: 3, Kind: "grid"}, ""},
		{"missing name", sample{Size: 3, Kind: "grid"}, "name: field is required"},
		{"bad name", sample{Name: "a b", Size: 3, Kind: "grid"}, `name: invalid name "a b"`},
		{"size low", sample{Name: "a", Size: 0, Kind: "grid"}, "size: must be at least 1"},
		{"size high", sample{Name: "a", Size: 11, Kind: "graph"}, "size: must not exceed 10"},
		{"kind", sample{Name: "a", Size: 1, Kind: "tree"}, "kind: must be one of [grid graph]"},
		{"dive", sample{Name: "a", Size: 1, Kind: "grid", Items: []string{"ok", "no way"}}, "items[1]: invalid name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Struct() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStruct_Nil(t *testing.T) {
	if err := Struct(nil); err == nil {
		t.Fatal("expected error for nil")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		expectErr bool
	}{
		{"node_1", false},
		{"a.b:c-d", false},
		{"", true},
		{"has space", true},
		{strings.Repeat("x", MaxNameLength), false},
		{strings.Repeat("x", MaxNameLength+1), true},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.expectErr {
			t.Errorf("ValidateName(%q) = %v, expectErr %v", tt.name, err, tt.expectErr)
		}
	}
}

func TestNewValidator_NodenameRule(t *testing.T) {
	v := newValidator()
	if err := v.Var("ok_name", "nodename"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := v.Var("bad name", "nodename"); err == nil {
		t.Error("nodename rule not registered: invalid name accepted")
	}
}
