package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var errInvalidConfig = errors.New("invalid config")

type controllerConfig struct {
	InitialPitch     float64 `yaml:"initial_pitch"`
	InitialYaw       float64 `yaml:"initial_yaw"`
	MinPitch         float64 `yaml:"min_pitch"`
	MaxPitch         float64 `yaml:"max_pitch"`
	YawSensitivity   float64 `yaml:"yaw_sensitivity"`
	PitchSensitivity float64 `yaml:"pitch_sensitivity"`
	Damping          float64 `yaml:"damping"`
	BaseY            float64 `yaml:"base_y"`
	BobAmplitude     float64 `yaml:"bob_amplitude"`
	BobFrequency     float64 `yaml:"bob_frequency"`
}

type cameraConfig struct {
	Position []float32 `yaml:"position"`
	FOV      float32   `yaml:"fov"`
	Near     float32   `yaml:"near"`
	Far      float32   `yaml:"far"`
}

type sceneConfig struct {
	Scale float32 `yaml:"scale"`
}

type themeConfig struct {
	Dark bool `yaml:"dark"`
}

type siteConfig struct {
	Controller controllerConfig `yaml:"controller"`
	Camera     cameraConfig     `yaml:"camera"`
	Scene      sceneConfig      `yaml:"scene"`
	Theme      themeConfig      `yaml:"theme"`
}

func defaultConfig() siteConfig {
	return siteConfig{
		Controller: controllerConfig{
			InitialPitch:     0.25,
			InitialYaw:       -0.5,
			MinPitch:         0,
			MaxPitch:         0.5,
			YawSensitivity:   0.005,
			PitchSensitivity: 0.003,
			Damping:          0.08,
			BaseY:            -1.2,
			BobAmplitude:     0.05,
			BobFrequency:     1,
		},
		Camera: cameraConfig{
			Position: []float32{0, 1.5, 10},
			FOV:      45,
			Near:     0.1,
			Far:      100,
		},
		Scene: sceneConfig{
			Scale: 0.65,
		},
	}
}

// parseConfig overlays b onto the defaults.
func parseConfig(b []byte) (siteConfig, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return defaultConfig(), err
	}
	if err := cfg.validate(); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

func (c *siteConfig) validate() error {
	cc := &c.Controller
	switch {
	case cc.YawSensitivity <= 0:
		return fmt.Errorf("%w: yaw_sensitivity must be positive", errInvalidConfig)
	case cc.PitchSensitivity <= 0:
		return fmt.Errorf("%w: pitch_sensitivity must be positive", errInvalidConfig)
	case cc.Damping <= 0 || cc.Damping >= 1:
		return fmt.Errorf("%w: damping must be in (0, 1)", errInvalidConfig)
	case cc.MinPitch > cc.MaxPitch:
		return fmt.Errorf("%w: min_pitch must not exceed max_pitch", errInvalidConfig)
	case cc.BobFrequency < 0:
		return fmt.Errorf("%w: bob_frequency must not be negative", errInvalidConfig)
	}
	cam := &c.Camera
	switch {
	case len(cam.Position) != 3:
		return fmt.Errorf("%w: camera position must have 3 elements", errInvalidConfig)
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("%w: fov must be in (0, 180)", errInvalidConfig)
	case cam.Near <= 0 || cam.Near >= cam.Far:
		return fmt.Errorf("%w: near must be positive and less than far", errInvalidConfig)
	}
	if c.Scene.Scale <= 0 {
		return fmt.Errorf("%w: scene scale must be positive", errInvalidConfig)
	}
	return nil
}
