package main

import (
	"io"

	"github.com/crystalbridge/builderweb/scene"
	"github.com/seqsense/pcgol/pc"
	"gopkg.in/yaml.v3"
)

// dumpConfig writes the default site config.
func dumpConfig(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(defaultConfig()); err != nil {
		return err
	}
	return enc.Close()
}

// dumpScene writes the tessellated house as a PCD file. Each triangle
// vertex is one point, labeled with its material.
func dumpScene(w io.Writer) (int, error) {
	pp, err := scene.Tessellate(scene.NewHouse())
	if err != nil {
		return 0, err
	}
	if err := pc.Marshal(pp, w); err != nil {
		return 0, err
	}
	return pp.Points, nil
}
