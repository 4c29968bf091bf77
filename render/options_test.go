package render

import (
	"errors"
	"testing"
)

func TestDefaultOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions() should validate cleanly, got %v", err)
	}
}

func TestOptionsValidateRejectsBadFields(t *testing.T) {
	base := DefaultOptions()
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative height", func(o *Options) { o.Height = -1 }},
		{"zero FOV", func(o *Options) { o.FOV = 0 }},
		{"FOV at pi", func(o *Options) { o.FOV = 3.14159265 }},
		{"zero tile size", func(o *Options) { o.TileSize = 0 }},
		{"negative workers", func(o *Options) { o.Workers = -1 }},
		{"negative bounce depth", func(o *Options) { o.BounceDepth = -1 }},
		{"negative leaf max", func(o *Options) { o.LeafMax = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := base
			c.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatalf("expected an error for %s", c.name)
			}
			var renderErr *RenderError
			if !errors.As(err, &renderErr) {
				t.Fatalf("expected a *RenderError, got %v (%T)", err, err)
			}
			if renderErr.Kind != ConfigError {
				t.Fatalf("expected ConfigError, got %v", renderErr.Kind)
			}
		})
	}
}

func TestOptionsValidateAllowsZeroBounceDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.BounceDepth = 0
	if err := opts.Validate(); err != nil {
		t.Fatalf("bounce depth 0 should be a valid configuration, got %v", err)
	}
}
