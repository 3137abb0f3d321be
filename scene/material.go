package scene

type MaterialID uint32

const (
	MatGrass MaterialID = iota
	MatDriveway
	MatWalkway
	MatWhite
	MatOffWhite
	MatWoodDark
	MatWoodDarker
	MatRoofMid
	MatGarageDoor
	MatTrunk
	MatLeafDark
	MatLeafLight
	MatBushDark
	MatBushLight
	MatLampMetal
	MatLampBulb
	MatFixtureBody
	MatGardenBulb
	MatWallLightBulb
	MatWindow
	MatDoorKnob
	MatBalconyGlass
	MatPoolDeck
	MatPoolHole
	MatWater
	MatCoping
	MatLadder
	MatCushion
	MatPillow
	MatCarBody
	MatCarBase
	MatCarGlass
	MatCarRoof
	MatCarAccent
	MatTire
	MatRim
	MatMirror
	MatExhaust
	MatHeadlight
	MatTaillight
	MatIndicator

	NumMaterials
)

type Color [3]float32

func rgb(hex uint32) Color {
	return Color{
		float32(hex>>16&0xFF) / 255,
		float32(hex>>8&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}

type Material struct {
	Color             Color
	Emissive          Color
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
	Opacity           float32
}

// MaterialSet is indexed by MaterialID.
type MaterialSet [NumMaterials]Material

func solid(hex uint32) Material {
	return Material{Color: rgb(hex), Roughness: 1, Opacity: 1}
}

func metal(hex uint32, metalness, roughness float32) Material {
	return Material{Color: rgb(hex), Metalness: metalness, Roughness: roughness, Opacity: 1}
}

func glow(m Material, emissive uint32, intensity float32) Material {
	m.Emissive = rgb(emissive)
	m.EmissiveIntensity = intensity
	return m
}

// Materials returns the material set for the given theme. Fixtures are lit
// only when dark.
func Materials(isDark bool) MaterialSet {
	var s MaterialSet

	s[MatGrass] = solid(0x7CB342)
	s[MatDriveway] = metal(0x9E9E9E, 0, 0.7)
	s[MatWalkway] = metal(0xBDBDBD, 0, 0.8)
	s[MatWhite] = solid(0xFAFAFA)
	s[MatOffWhite] = solid(0xF5F5F5)
	s[MatWoodDark] = solid(0x5D4037)
	s[MatWoodDarker] = solid(0x3E2723)
	s[MatRoofMid] = solid(0x4E342E)
	s[MatGarageDoor] = metal(0x424242, 0.3, 0.6)
	s[MatTrunk] = solid(0x5D4037)
	s[MatLeafDark] = solid(0x2E7D32)
	s[MatLeafLight] = solid(0x388E3C)
	s[MatBushDark] = solid(0x43A047)
	s[MatBushLight] = solid(0x66BB6A)
	s[MatLampMetal] = metal(0x263238, 0.6, 0.4)
	s[MatFixtureBody] = solid(0x424242)
	s[MatDoorKnob] = metal(0xFFD54F, 0.8, 0.5)
	s[MatBalconyGlass] = solid(0xE0E0E0)
	s[MatBalconyGlass].Opacity = 0.6
	s[MatPoolDeck] = metal(0x8D6E63, 0, 0.8)
	s[MatPoolHole] = solid(0x006064)
	s[MatWater] = metal(0x00E5FF, 0.1, 0.05)
	s[MatWater].Opacity = 0.7
	s[MatCoping] = solid(0xEEEEEE)
	s[MatLadder] = metal(0xCFD8DC, 0.8, 0.5)
	s[MatCushion] = solid(0xFF5252)
	s[MatPillow] = solid(0xFFFFFF)
	s[MatCarBody] = metal(0x283593, 0.7, 0.2)
	s[MatCarBase] = metal(0x0A0A0A, 0, 0.9)
	s[MatCarGlass] = metal(0x263238, 0.95, 0.1)
	s[MatCarRoof] = metal(0x1A1A1A, 0.5, 0.3)
	s[MatCarAccent] = solid(0xFFC107)
	s[MatTire] = metal(0x111111, 0, 0.8)
	s[MatRim] = metal(0x505050, 0.8, 0.5)
	s[MatMirror] = solid(0x555555)
	s[MatExhaust] = solid(0x333333)
	s[MatIndicator] = glow(solid(0xFFB300), 0xFFB300, 1)

	if isDark {
		s[MatLampBulb] = glow(solid(0xFFF9C4), 0xFFF176, 2)
		s[MatGardenBulb] = glow(solid(0xFFFFFF), 0xFFD54F, 3)
		s[MatWallLightBulb] = glow(solid(0xFFFFFF), 0xFFA000, 3)
		s[MatWindow] = glow(metal(0xFFE082, 0.1, 0.3), 0xFFA726, 0.8)
		s[MatHeadlight] = glow(solid(0xE0F7FA), 0xFFFFFF, 5)
		s[MatTaillight] = glow(solid(0xD32F2F), 0xFF0000, 2)
	} else {
		s[MatLampBulb] = solid(0xFFFFFF)
		s[MatGardenBulb] = solid(0xFFFFFF)
		s[MatWallLightBulb] = solid(0xFFFFFF)
		s[MatWindow] = metal(0x4FC3F7, 0.5, 0.1)
		s[MatHeadlight] = glow(solid(0xFFFFFF), 0xCCCCCC, 0.5)
		s[MatTaillight] = glow(solid(0xD32F2F), 0xFF0000, 0.8)
	}
	return s
}
