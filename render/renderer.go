package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"inertia/game"
)

// Renderer draws snapshots of the simulation
type Renderer struct {
	camera *Camera
	dust   *dustField
	rng    *rand.Rand

	// grid mirrors the simulation's cell layout for the debug overlay
	grid      *game.Grid
	gridWorld float64
	cellBuf   []int

	// Predicted player course in world coordinates
	trail []game.Vec2

	Debug *DebugState
}

// NewRenderer creates a renderer drawing through camera
func NewRenderer(camera *Camera, debug *DebugState) *Renderer {
	rng := rand.New(rand.NewSource(1))
	if debug == nil {
		debug = &DebugState{}
	}
	return &Renderer{
		camera: camera,
		dust:   newDustField(camera.Width, camera.Height, rng),
		rng:    rng,
		Debug:  debug,
	}
}

// Update advances the background by dt given the player's velocity
func (r *Renderer) Update(dt float64, snap *game.Snapshot) {
	if snap == nil {
		return
	}
	if p, ok := snap.Player(); ok {
		r.dust.update(dt, game.Vec2{X: p.VX, Y: p.VY})
	}
}

// SetTrail replaces the predicted course shown on the radar
func (r *Renderer) SetTrail(path []game.Vec2) {
	r.trail = path
}

// Render draws one frame. The camera follows the player while alive and
// stays where it was afterwards.
func (r *Renderer) Render(screen *ebiten.Image, snap *game.Snapshot, paused bool) {
	screen.Fill(colorBackground)
	if snap == nil {
		return
	}

	player, hasPlayer := snap.Player()
	if hasPlayer {
		r.camera.CenterOn(game.Vec2{X: player.X, Y: player.Y}, snap.WorldSize)
	}

	r.dust.draw(screen)

	if r.Debug.ShowGrid {
		r.drawGrid(screen, snap, player, hasPlayer)
	}
	if hasPlayer && snap.EnemiesRemaining <= closestEnemyLimit {
		r.drawClosestEnemy(screen, snap, player)
	}

	for i := range snap.Bodies {
		r.drawBody(screen, &snap.Bodies[i])
	}
	for _, l := range snap.Lasers {
		r.drawLaser(screen, l)
	}
	for _, e := range snap.Effects {
		r.drawEffect(screen, e)
	}

	if hasPlayer {
		r.drawRadar(screen, snap, player)
	}
	r.drawHUD(screen, snap, paused)
}

func (r *Renderer) drawBody(screen *ebiten.Image, b *game.BodyState) {
	radius := (b.Width/2 + b.Height/2) / 2
	if !r.camera.Visible(b.X, b.Y, radius+flameBaseLength) {
		return
	}
	sx, sy := r.camera.WorldToScreen(b.X, b.Y)
	zoom := r.camera.Zoom

	switch b.Kind {
	case game.KindMeteor:
		fillCircle(screen, sx, sy, radius*zoom, colorMeteor)
		strokeCircle(screen, sx, sy, radius*zoom, 1.5, colorMeteorEdge)
		return
	case game.KindPlayer:
		r.drawShip(screen, b, sx, sy, colorPlayer)
	case game.KindEnemy:
		r.drawShip(screen, b, sx, sy, colorEnemy)
	}

	// Health bar for damaged ships
	if b.MaxHealth > 0 && b.Health < b.MaxHealth {
		barWidth := radius * 2 * zoom
		barX := sx - barWidth/2
		barY := sy - radius*zoom - healthBarHeight - 4
		fillRect(screen, barX, barY, barWidth, healthBarHeight, colorHealthBack)
		fillRect(screen, barX, barY, barWidth*b.Health/b.MaxHealth, healthBarHeight, colorHealth)
	}
}

// drawShip draws a hull, its engine flame while thrusting and its velocity vector
func (r *Renderer) drawShip(screen *ebiten.Image, b *game.BodyState, sx, sy float64, clr color.Color) {
	s := r.camera.Zoom * b.Width / game.ShipSize
	triangle(screen, sx, sy, b.Angle, s, clr)

	if b.Thrust {
		// Flame leaves the back center opposite the nose
		ax, ay := rotatePoint(shipBackOffset*s, 0, b.Angle)
		length := flameBaseLength + r.rng.Float64()*flameVarLength
		fx, fy := rotatePoint((shipBackOffset-length)*s, 0, b.Angle)
		flame := color.NRGBA{R: 255, G: 150 + uint8(r.rng.Intn(100)), B: 0, A: 255}
		line(screen, sx+ax, sy+ay, sx+fx, sy+fy, 2, flame)
	}

	line(screen, sx, sy, sx+b.VX*velocityVectorScale, sy+b.VY*velocityVectorScale, 1, colorVelocityVector)
}

func (r *Renderer) drawLaser(screen *ebiten.Image, l game.LaserState) {
	if !r.camera.Visible(l.X, l.Y, game.LaserWidth) {
		return
	}
	sx, sy := r.camera.WorldToScreen(l.X, l.Y)
	hx, hy := rotatePoint(game.LaserWidth/2*r.camera.Zoom, 0, l.Angle)
	line(screen, sx-hx, sy-hy, sx+hx, sy+hy, game.LaserHeight*r.camera.Zoom, colorLaser)
}

// drawEffect draws an explosion as a ring that grows and fades with its frame
func (r *Renderer) drawEffect(screen *ebiten.Image, e game.EffectState) {
	maxR := smallExplosionRadius
	if e.Kind == game.LargeExplosion {
		maxR = largeExplosionRadius
	}
	if !r.camera.Visible(e.X, e.Y, maxR) {
		return
	}

	progress := float64(e.Frame+1) / game.ExplosionFrames
	radius := maxR * math.Sqrt(progress) * r.camera.Zoom
	sx, sy := r.camera.WorldToScreen(e.X, e.Y)

	core := color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	fillCircle(screen, sx, sy, radius*0.6, withAlpha(core, 1-progress))
	strokeCircle(screen, sx, sy, radius, 2, withAlpha(color.NRGBA{R: 255, G: 110, B: 40, A: 255}, 1-progress))
}

// drawClosestEnemy draws a guide line from the player to the nearest enemy
func (r *Renderer) drawClosestEnemy(screen *ebiten.Image, snap *game.Snapshot, player game.BodyState) {
	closest, ok := closestEnemy(snap, player)
	if !ok {
		return
	}
	px, py := r.camera.WorldToScreen(player.X, player.Y)
	ex, ey := r.camera.WorldToScreen(closest.X, closest.Y)
	line(screen, px, py, ex, ey, 1, colorClosestEnemy)
}

// closestEnemy finds the enemy nearest to the player
func closestEnemy(snap *game.Snapshot, player game.BodyState) (game.BodyState, bool) {
	var best game.BodyState
	bestDist := math.Inf(1)
	for _, b := range snap.Bodies {
		if b.Kind != game.KindEnemy {
			continue
		}
		if d := math.Hypot(b.X-player.X, b.Y-player.Y); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// drawGrid draws the visible cell lines and shades the cells the player's
// collisions are checked against
func (r *Renderer) drawGrid(screen *ebiten.Image, snap *game.Snapshot, player game.BodyState, hasPlayer bool) {
	if r.grid == nil || r.grid.CellSize() != snap.CellSize || r.gridWorld != snap.WorldSize {
		r.grid = game.NewGrid(snap.WorldSize, snap.WorldSize, snap.CellSize)
		r.gridWorld = snap.WorldSize
	}

	if hasPlayer {
		r.cellBuf = r.grid.Neighborhood(player.X, player.Y, r.cellBuf[:0])
		for _, idx := range r.cellBuf {
			b := r.grid.CellBounds(idx)
			x, y := r.camera.WorldToScreen(b.X, b.Y)
			fillRect(screen, x, y, b.Width*r.camera.Zoom, b.Height*r.camera.Zoom, colorNeighborhood)
		}
	}

	cs := snap.CellSize
	w, h := r.camera.ViewSize()
	for x := math.Floor(r.camera.X/cs) * cs; x <= r.camera.X+w; x += cs {
		sx, _ := r.camera.WorldToScreen(x, 0)
		line(screen, sx, 0, sx, r.camera.Height, 1, colorGridLine)
	}
	for y := math.Floor(r.camera.Y/cs) * cs; y <= r.camera.Y+h; y += cs {
		_, sy := r.camera.WorldToScreen(0, y)
		line(screen, 0, sy, r.camera.Width, sy, 1, colorGridLine)
	}

	wx, wy := r.camera.WorldToScreen(snap.WorldSize, snap.WorldSize)
	ox, oy := r.camera.WorldToScreen(0, 0)
	strokeRect(screen, ox, oy, wx-ox, wy-oy, 2, colorGridLine)
}
