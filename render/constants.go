package render

import "image/color"

// Color constants
var (
	colorBackground     = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorDust           = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colorPlayer         = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
	colorEnemy          = color.NRGBA{R: 255, G: 80, B: 70, A: 255}
	colorMeteor         = color.NRGBA{R: 150, G: 130, B: 110, A: 255}
	colorMeteorEdge     = color.NRGBA{R: 90, G: 78, B: 66, A: 255}
	colorLaser          = color.NRGBA{R: 255, G: 240, B: 90, A: 255}
	colorVelocityVector = color.NRGBA{R: 0, G: 255, B: 0, A: 160}
	colorHealthBack     = color.NRGBA{R: 100, G: 0, B: 0, A: 255}
	colorHealth         = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorGridLine       = color.NRGBA{R: 40, G: 60, B: 90, A: 255}
	colorNeighborhood   = color.NRGBA{R: 40, G: 90, B: 160, A: 60}
	colorClosestEnemy   = color.NRGBA{R: 255, G: 80, B: 70, A: 110}
	colorHUD            = color.NRGBA{R: 220, G: 230, B: 255, A: 255}
	colorBanner         = color.NRGBA{R: 255, G: 220, B: 120, A: 255}
	colorBannerBack     = color.NRGBA{R: 0, G: 0, B: 0, A: 170}

	colorRadarBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 230}
	colorRadarRing     = color.NRGBA{R: 24, G: 48, B: 96, A: 255}
	colorRadarPlayer   = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
	colorRadarMeteor   = color.NRGBA{R: 120, G: 110, B: 100, A: 200}
)

// Ship geometry constants, in local space with the nose along +x
const (
	shipNoseOffset      = 18.0
	shipBackOffset      = -12.0
	shipHalfWidth       = 12.0
	flameBaseLength     = 22.0
	flameVarLength      = 8.0
	velocityVectorScale = 0.1
	healthBarHeight     = 4.0
)

// Dust constants
const (
	dustCount          = 90
	dustSpanMultiplier = 1.5
	dustMinSpeed       = 0.04
	dustMaxSpeed       = 0.3
)

// Radar geometry constants
const (
	radarRadius        = 90.0
	radarRange         = 3000.0
	radarMargin        = 14.0
	radarEdgeMargin    = 4.0
	radarBlipSize      = 3.0
	radarCenterDotSize = 2.0
	radarLabelOffsetX  = 6.0
	radarLabelOffsetY  = 10.0

	// Predicted course: trailSteps points trailStep seconds apart
	trailSteps = 40
	trailStep  = 0.075
)

// Explosion ring sizes at the last frame
const (
	smallExplosionRadius = 14.0
	largeExplosionRadius = 56.0
)

// UI constants
const (
	hudMarginX = 10
	hudMarginY = 10
	hudLineGap = 16

	// closestEnemyLimit is the enemy count at or below which a guide line
	// points at the nearest one
	closestEnemyLimit = 10
)
