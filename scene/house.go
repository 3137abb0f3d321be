package scene

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const halfPi = math.Pi / 2

// NewHouse builds the diorama root in its own unscaled coordinates. The
// caller places, rotates and scales the root.
func NewHouse() *Node {
	return group("house", mat.Vec3{},
		ground(),

		streetLamp(mat.Vec3{-3.5, 0, 5}, -math.Pi/4),
		gardenLight(mat.Vec3{-0.1, 0, 3.5}),
		gardenLight(mat.Vec3{1.1, 0, 3.5}),
		gardenLight(mat.Vec3{-0.1, 0, 2}),
		gardenLight(mat.Vec3{1.1, 0, 2}),

		swimmingPool(mat.Vec3{4, 0, 1.5}),
		garage(mat.Vec3{-2.5, 0.5, 0.5}),
		car(mat.Vec3{-2.5, 0, 4}, 0),
		mainBuilding(mat.Vec3{0.5, 0.8, -0.3}),
		roof(mat.Vec3{0.8, 3.5, -0.3}),

		tree(mat.Vec3{5.2, 0, -3.5}, 1.2),
		tree(mat.Vec3{-5, 0, -3}, 1.1),
		tree(mat.Vec3{5, 0, 4}, 0.9),

		bush(mat.Vec3{3, 0.1, 4.5}, 1),
		bush(mat.Vec3{-1, 0.1, 3}, 0.8),
		bush(mat.Vec3{5.2, 0.1, 1}, 0.7),
		bush(mat.Vec3{-4.5, 0.1, 1}, 0.9),
	)
}

func ground() *Node {
	return group("ground", mat.Vec3{0, -0.1, 0},
		box(mat.Vec3{0, -0.15, 0}, 12, 0.35, 11, MatGrass),
		box(mat.Vec3{-2.5, 0.02, 3}, 3, 0.08, 5, MatDriveway).named("driveway"),
		box(mat.Vec3{0.5, 0.02, 2.5}, 1.5, 0.08, 2.5, MatWalkway).named("walkway"),
		box(mat.Vec3{-5.8, 0.4, 0}, 0.12, 0.8, 9, MatWhite),
		box(mat.Vec3{5.8, 0.4, 0}, 0.12, 0.8, 9, MatWhite),
		box(mat.Vec3{0, 0.4, -4.3}, 11.7, 0.8, 0.12, MatWhite),
	)
}

func tree(pos mat.Vec3, s float32) *Node {
	return group("tree", pos,
		cylinder(mat.Vec3{0, 0.4, 0}, 0.08, 0.12, 0.8, 8, MatTrunk),
		sphere(mat.Vec3{0, 1, 0}, 0.5, 12, MatLeafDark),
		sphere(mat.Vec3{0, 1.4, 0}, 0.35, 12, MatLeafLight),
	).scaled(s)
}

func bush(pos mat.Vec3, s float32) *Node {
	return group("bush", pos,
		sphere(mat.Vec3{}, 0.25, 8, MatBushDark),
		sphere(mat.Vec3{0.15, 0.05, 0.1}, 0.2, 8, MatBushLight),
	).scaled(s)
}

func streetLamp(pos mat.Vec3, yaw float32) *Node {
	bulb := box(mat.Vec3{0.75, 2.8, 0}, 0.25, 0.02, 0.15, MatLampBulb)
	bulb.Light = &Light{
		Kind:      LightSpot,
		Position:  mat.Vec3{0, -0.1, 0},
		Direction: mat.Vec3{0, -1, 0},
		Color:     rgb(0xFFF9C4),
		Intensity: 8,
		Distance:  10,
		Angle:     0.6,
		Penumbra:  0.5,
	}
	return group("streetLamp", pos,
		cylinder(mat.Vec3{0, 1.5, 0}, 0.05, 0.06, 3, 8, MatLampMetal),
		cylinder(mat.Vec3{0.4, 2.9, 0}, 0.04, 0.04, 0.8, 8, MatLampMetal).rotated(mat.Vec3{0, 0, -halfPi}),
		box(mat.Vec3{0.75, 2.85, 0}, 0.3, 0.08, 0.2, MatLampMetal),
		bulb,
	).rotated(mat.Vec3{0, yaw, 0})
}

func gardenLight(pos mat.Vec3) *Node {
	bulb := box(mat.Vec3{0, 0.35, 0}, 0.08, 0.08, 0.08, MatGardenBulb)
	bulb.Light = &Light{
		Kind:      LightPoint,
		Position:  mat.Vec3{0, 0.05, 0},
		Color:     rgb(0xFFD54F),
		Intensity: 1,
		Distance:  2,
	}
	return group("gardenLight", pos,
		box(mat.Vec3{0, 0.2, 0}, 0.1, 0.4, 0.1, MatFixtureBody),
		bulb,
	)
}

func wallLight(pos mat.Vec3, w, h, intensity, distance float32) *Node {
	bulb := box(mat.Vec3{0, 0, 0.06}, w-0.04, h-0.07, 0.02, MatWallLightBulb)
	bulb.Light = &Light{
		Kind:      LightPoint,
		Color:     rgb(0xFFA000),
		Intensity: intensity,
		Distance:  distance,
	}
	return group("wallLight", pos,
		box(mat.Vec3{}, w, h, 0.1, MatExhaust),
		bulb,
	)
}

func swimmingPool(pos mat.Vec3) *Node {
	water := box(mat.Vec3{0, 0.1, 0}, 2, 0.05, 4, MatWater).named("water")
	poolLight := func(z float32) *Node {
		return &Node{
			Name:     "poolLight",
			Position: mat.Vec3{0, 0.3, z},
			Light: &Light{
				Kind:      LightPoint,
				Color:     rgb(0x00E5FF),
				Intensity: 2,
				Distance:  3,
			},
		}
	}
	return group("swimmingPool", pos,
		box(mat.Vec3{0, 0.05, 0}, 2.6, 0.1, 5, MatPoolDeck),
		box(mat.Vec3{0, 0.06, 0}, 2, 0.05, 4, MatPoolHole),
		water,
		poolLight(1),
		poolLight(-1),

		box(mat.Vec3{0, 0.11, -2.1}, 2.4, 0.05, 0.2, MatCoping),
		box(mat.Vec3{0, 0.11, 2.1}, 2.4, 0.05, 0.2, MatCoping),
		box(mat.Vec3{-1.1, 0.11, 0}, 0.2, 0.05, 4.4, MatCoping),
		box(mat.Vec3{1.1, 0.11, 0}, 0.2, 0.05, 4.4, MatCoping),

		group("ladder", mat.Vec3{-0.9, 0, -2},
			cylinder(mat.Vec3{}, 0.03, 0.03, 0.6, 8, MatLadder),
			cylinder(mat.Vec3{0.3, 0, 0}, 0.03, 0.03, 0.6, 8, MatLadder),
		),

		lounger(mat.Vec3{0.7, 0.18, -3.5}, -0.6),
	)
}

func lounger(pos mat.Vec3, yaw float32) *Node {
	leg := func(x, z float32) *Node {
		return cylinder(mat.Vec3{x, -0.08, z}, 0.02, 0.02, 0.15, 8, MatWoodDarker)
	}
	return group("lounger", pos,
		box(mat.Vec3{0, 0, 0.3}, 0.6, 0.05, 1.2, MatWoodDark),
		leg(-0.25, 0.8),
		leg(0.25, 0.8),
		leg(-0.25, -0.2),
		leg(0.25, -0.2),
		group("backrest", mat.Vec3{0, 0, -0.3},
			box(mat.Vec3{0, 0.25, 0}, 0.6, 0.05, 0.6, MatWoodDark),
			box(mat.Vec3{0, 0.28, 0}, 0.5, 0.06, 0.55, MatCushion),
		).rotated(mat.Vec3{0.5, 0, 0}),
		box(mat.Vec3{0, 0.06, 0.3}, 0.5, 0.06, 1.15, MatCushion),
		box(mat.Vec3{0, 0.45, -0.55}, 0.35, 0.1, 0.2, MatPillow).rotated(mat.Vec3{0.5, 0, 0}),
	).rotated(mat.Vec3{0, yaw, 0})
}

func garage(pos mat.Vec3) *Node {
	return group("garage", pos,
		box(mat.Vec3{}, 2.5, 2, 2.5, MatOffWhite),
		box(mat.Vec3{0, -0.3, 1.26}, 2, 1.4, 0.08, MatGarageDoor),
		box(mat.Vec3{0, 1.1, 0}, 2.7, 0.18, 2.7, MatWoodDark),
		wallLight(mat.Vec3{1, 0.5, 1.3}, 0.15, 0.2, 1, 3),
	)
}

func car(pos mat.Vec3, yaw float32) *Node {
	const (
		wheelRadius  = 0.2
		wheelWidth   = 0.14
		chassisLevel = 0.22
	)

	body := group("body", mat.Vec3{0, chassisLevel, 0},
		box(mat.Vec3{0, -0.04, 0}, 1.05, 0.08, 2.1, MatCarBase),
		box(mat.Vec3{0, 0.18, 0}, 1, 0.32, 2.05, MatCarBody),
		box(mat.Vec3{0.5, 0.2, 0.65}, 0.15, 0.22, 0.45, MatCarBody),
		box(mat.Vec3{-0.5, 0.2, 0.65}, 0.15, 0.22, 0.45, MatCarBody),
		box(mat.Vec3{0.5, 0.2, -0.65}, 0.15, 0.22, 0.45, MatCarBody),
		box(mat.Vec3{-0.5, 0.2, -0.65}, 0.15, 0.22, 0.45, MatCarBody),
		box(mat.Vec3{0, 0.36, 0.7}, 0.95, 0.08, 0.8, MatCarBody).rotated(mat.Vec3{-0.1, 0, 0}),
		box(mat.Vec3{0, 0.55, -0.1}, 0.85, 0.38, 1.3, MatCarGlass),
		box(mat.Vec3{0, 0.75, -0.15}, 0.9, 0.04, 1.1, MatCarRoof),
		box(mat.Vec3{0, 0.36, -0.7}, 0.95, 0.08, 0.8, MatCarBody).rotated(mat.Vec3{0.1, 0, 0}),

		box(mat.Vec3{0.52, 0.45, 0.3}, 0.04, 0.02, 0.08, MatMirror),
		box(mat.Vec3{0.58, 0.42, 0.35}, 0.12, 0.08, 0.06, MatCarBody),
		box(mat.Vec3{-0.52, 0.45, 0.3}, 0.04, 0.02, 0.08, MatMirror),
		box(mat.Vec3{-0.58, 0.42, 0.35}, 0.12, 0.08, 0.06, MatCarBody),

		box(mat.Vec3{0.51, 0.32, 0}, 0.02, 0.025, 0.12, MatCarRoof),
		box(mat.Vec3{-0.51, 0.32, 0}, 0.02, 0.025, 0.12, MatCarRoof),

		cylinder(mat.Vec3{0.2, 0.05, -1.05}, 0.035, 0.035, 0.1, 8, MatExhaust).rotated(mat.Vec3{halfPi, 0, 0}),
		cylinder(mat.Vec3{-0.2, 0.05, -1.05}, 0.035, 0.035, 0.1, 8, MatExhaust).rotated(mat.Vec3{halfPi, 0, 0}),
	)

	c := group("car", pos, body)
	c.Rotation = mat.Vec3{0, yaw, 0}

	for i, p := range [][2]float32{{-0.48, 0.65}, {0.48, 0.65}, {-0.48, -0.65}, {0.48, -0.65}} {
		side := float32(1)
		if i%2 == 0 {
			side = -1
		}
		c.Children = append(c.Children,
			group("wheel", mat.Vec3{p[0], wheelRadius, p[1]},
				cylinder(mat.Vec3{}, wheelRadius, wheelRadius, wheelWidth, 24, MatTire),
				cylinder(mat.Vec3{0, side * 0.015, 0}, 0.13, 0.13, wheelWidth+0.01, 16, MatRim),
				box(mat.Vec3{side * 0.04, 0, 0}, 0.04, 0.1, 0.06, MatCarAccent).rotated(mat.Vec3{0, halfPi, 0}),
			).rotated(mat.Vec3{0, 0, halfPi}),
		)
	}

	headlights := group("headlights", mat.Vec3{0, 0.35, 1.05},
		box(mat.Vec3{0, 0, -0.02}, 0.95, 0.2, 0.04, MatCarBase),
	)
	for _, x := range []float32{-0.35, 0.35} {
		h := box(mat.Vec3{x, 0, 0}, 0.22, 0.12, 0.05, MatHeadlight)
		h.Light = &Light{
			Kind:      LightSpot,
			Position:  mat.Vec3{0, 0, 0.1},
			Direction: mat.Vec3{0, -0.5, 5}.Normalized(),
			Color:     rgb(0xFFFFFF),
			Intensity: 8,
			Distance:  10,
			Angle:     0.5,
			Penumbra:  0.4,
		}
		headlights.Children = append(headlights.Children, h)
	}

	lamps := group("carLights", mat.Vec3{0, chassisLevel, 0},
		headlights,
		group("taillights", mat.Vec3{0, 0.38, -1.05},
			box(mat.Vec3{0, 0, -0.02}, 0.95, 0.15, 0.04, MatCarBase),
			box(mat.Vec3{}, 0.9, 0.06, 0.05, MatTaillight),
			box(mat.Vec3{0.3, 0.05, 0.01}, 0.15, 0.02, 0.05, MatIndicator),
			box(mat.Vec3{-0.3, 0.05, 0.01}, 0.15, 0.02, 0.05, MatIndicator),
		),
		group("grille", mat.Vec3{0, 0.15, 1.06},
			box(mat.Vec3{0, 0.15, 0}, 0.5, 0.12, 0.04, MatTire),
			box(mat.Vec3{0, -0.05, 0}, 0.8, 0.08, 0.04, MatTire),
			box(mat.Vec3{0, -0.05, 0.03}, 0.3, 0.06, 0.02, MatExhaust),
		).rotated(mat.Vec3{0.05, 0, 0}),
	)
	c.Children = append(c.Children, lamps)
	return c
}

func mainBuilding(pos mat.Vec3) *Node {
	window := func(p mat.Vec3, w, h float32) *Node {
		return box(p, w, h, 0.06, MatWindow)
	}
	return group("mainBuilding", pos,
		box(mat.Vec3{}, 4, 2.5, 3.5, MatWhite),
		box(mat.Vec3{0.3, 2.2, 0}, 3.4, 1.8, 3.2, MatOffWhite),

		window(mat.Vec3{-1.2, 0.2, 1.76}, 0.8, 1.2),
		window(mat.Vec3{1.2, 0.2, 1.76}, 0.8, 1.2),

		box(mat.Vec3{0, -0.4, 1.76}, 0.9, 1.7, 0.1, MatWoodDarker).named("door"),
		sphere(mat.Vec3{0.35, -0.4, 1.82}, 0.05, 8, MatDoorKnob),

		wallLight(mat.Vec3{-0.6, 0.2, 1.8}, 0.12, 0.25, 1.5, 4),
		wallLight(mat.Vec3{0.6, 0.2, 1.8}, 0.12, 0.25, 1.5, 4),

		window(mat.Vec3{0.3, 2.2, 1.61}, 2, 1),

		box(mat.Vec3{0.3, 1.4, 1.8}, 2.5, 0.12, 0.6, MatDriveway),
		box(mat.Vec3{0.3, 1.7, 2.05}, 2.5, 0.5, 0.06, MatBalconyGlass),
	)
}

func roof(pos mat.Vec3) *Node {
	return group("roof", pos,
		box(mat.Vec3{0, 0.5, 0}, 4.2, 0.22, 3.8, MatWoodDarker),
		box(mat.Vec3{0, 0.72, 0}, 3.6, 0.22, 3.2, MatRoofMid),
		box(mat.Vec3{0, 0.94, 0}, 2.8, 0.18, 2.4, MatWoodDark),
	)
}
