package main

import (
	"errors"
	"testing"
)

func TestParseConfig(t *testing.T) {
	testCases := map[string]struct {
		input   string
		check   func(t *testing.T, c siteConfig)
		invalid bool
	}{
		"Empty": {
			input: "",
			check: func(t *testing.T, c siteConfig) {
				if c.Controller.Damping != 0.08 {
					t.Errorf("Expected: %f, got: %f", 0.08, c.Controller.Damping)
				}
				if c.Scene.Scale != 0.65 {
					t.Errorf("Expected: %f, got: %f", 0.65, c.Scene.Scale)
				}
			},
		},
		"Overlay": {
			input: "controller:\n  damping: 0.2\ntheme:\n  dark: true\n",
			check: func(t *testing.T, c siteConfig) {
				if c.Controller.Damping != 0.2 {
					t.Errorf("Expected: %f, got: %f", 0.2, c.Controller.Damping)
				}
				if c.Controller.YawSensitivity != 0.005 {
					t.Errorf("Unspecified values must keep defaults, got: %f", c.Controller.YawSensitivity)
				}
				if !c.Theme.Dark {
					t.Error("Expected dark theme")
				}
			},
		},
		"Camera": {
			input: "camera:\n  position: [1, 2, 3]\n  fov: 60\n",
			check: func(t *testing.T, c siteConfig) {
				if c.Camera.Position[2] != 3 || c.Camera.FOV != 60 {
					t.Errorf("Unexpected camera: %+v", c.Camera)
				}
			},
		},
		"DampingOne":      {input: "controller:\n  damping: 1\n", invalid: true},
		"PitchRange":      {input: "controller:\n  min_pitch: 1\n  max_pitch: 0\n", invalid: true},
		"ZeroSensitivity": {input: "controller:\n  yaw_sensitivity: 0\n", invalid: true},
		"CameraPosition":  {input: "camera:\n  position: [1, 2]\n", invalid: true},
		"NearFar":         {input: "camera:\n  near: 10\n  far: 5\n", invalid: true},
		"Scale":           {input: "scene:\n  scale: -1\n", invalid: true},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := parseConfig([]byte(tt.input))
			if tt.invalid {
				if !errors.Is(err, errInvalidConfig) {
					t.Fatalf("Expected errInvalidConfig, got: %v", err)
				}
				if c.Controller.Damping != 0.08 {
					t.Error("Invalid config must fall back to defaults")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, c)
		})
	}
}

func TestParseConfig_Syntax(t *testing.T) {
	c, err := parseConfig([]byte("controller: [\n"))
	if err == nil {
		t.Fatal("Expected syntax error")
	}
	if errors.Is(err, errInvalidConfig) {
		t.Error("Syntax error must not be reported as validation error")
	}
	if c.Controller.Damping != 0.08 {
		t.Error("Broken config must fall back to defaults")
	}
}
