package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		expectErr bool
	}{
		{name: "valid", data: "name: test\ncount: 3\n", expectErr: false},
		{name: "partial keys", data: "name: test\n", expectErr: false},
		{name: "unknown key rejected", data: "name: test\nnamee: typo\n", expectErr: true},
		{name: "malformed yaml", data: "name: [unclosed\n", expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg testConfig
			err := UnmarshalStrict([]byte(tt.data), &cfg)
			if (err != nil) != tt.expectErr {
				t.Errorf("UnmarshalStrict(%q) error = %v, expectErr %v", tt.data, err, tt.expectErr)
			}
		})
	}
}

func TestUnmarshalStrictValidation(t *testing.T) {
	t.Parallel()

	var cfg testConfig

	if err := UnmarshalStrict(nil, &cfg); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	huge := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := UnmarshalStrict(huge, &cfg); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(testConfig{Name: "doc", Count: 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), "name: doc") {
		t.Errorf("Marshal() = %q, want it to contain %q", out, "name: doc")
	}
}
