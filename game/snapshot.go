package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// BodyState is the renderable view of a body
type BodyState struct {
	ID        EntityID `msgpack:"id"`
	Kind      Kind     `msgpack:"k"`
	X         float64  `msgpack:"x"`
	Y         float64  `msgpack:"y"`
	VX        float64  `msgpack:"vx"`
	VY        float64  `msgpack:"vy"`
	Angle     float64  `msgpack:"a"`
	Width     float64  `msgpack:"w"`
	Height    float64  `msgpack:"h"`
	Mass      float64  `msgpack:"m"`
	Health    float64  `msgpack:"hp"`
	MaxHealth float64  `msgpack:"mhp"`
	Thrust    bool     `msgpack:"t"`
	Sprite    string   `msgpack:"s"`
	Cell      int      `msgpack:"c"`
}

// LaserState is the renderable view of a laser
type LaserState struct {
	ID    EntityID `msgpack:"id"`
	X     float64  `msgpack:"x"`
	Y     float64  `msgpack:"y"`
	Angle float64  `msgpack:"a"`
}

// EffectState is the renderable view of an explosion
type EffectState struct {
	ID    EntityID   `msgpack:"id"`
	Kind  EffectKind `msgpack:"k"`
	X     float64    `msgpack:"x"`
	Y     float64    `msgpack:"y"`
	Frame int        `msgpack:"f"`
}

// Snapshot is a consistent copy of the world taken between ticks
type Snapshot struct {
	Tick      uint64  `msgpack:"tick"`
	Time      float64 `msgpack:"time"`
	WorldSize float64 `msgpack:"world"`
	CellSize  float64 `msgpack:"cell"`

	Bodies  []BodyState   `msgpack:"bodies"`
	Lasers  []LaserState  `msgpack:"lasers"`
	Effects []EffectState `msgpack:"effects"`

	// PlayerID is InvalidEntityID when there is no player
	PlayerID         EntityID `msgpack:"player"`
	PlayerHealth     float64  `msgpack:"hp"`
	PlayerMaxHealth  float64  `msgpack:"mhp"`
	EnemiesRemaining int      `msgpack:"enemies"`
	Outcome          Outcome  `msgpack:"outcome"`
}

// GameOver reports whether the snapshot was taken after the round ended
func (s *Snapshot) GameOver() bool {
	return s.Outcome != OutcomeNone
}

// Player returns the player's body state, if the player is alive
func (s *Snapshot) Player() (BodyState, bool) {
	if s.PlayerID == InvalidEntityID {
		return BodyState{}, false
	}
	for _, b := range s.Bodies {
		if b.ID == s.PlayerID {
			return b, true
		}
	}
	return BodyState{}, false
}

// Snapshot copies the world state under the tick lock
func (s *Simulation) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		Tick:             s.ticks,
		Time:             s.clock,
		WorldSize:        s.cfg.WorldSize,
		CellSize:         s.cfg.CellSize,
		Bodies:           make([]BodyState, 0, len(s.bodies)),
		Lasers:           make([]LaserState, 0, len(s.lasers)),
		Effects:          make([]EffectState, 0, len(s.effects)),
		EnemiesRemaining: s.enemiesAlive,
		Outcome:          s.outcome,
	}

	for _, b := range s.bodies {
		if !b.alive {
			continue
		}
		snap.Bodies = append(snap.Bodies, BodyState{
			ID:        b.ID,
			Kind:      b.Kind,
			X:         b.Pos.X,
			Y:         b.Pos.Y,
			VX:        b.Vel.X,
			VY:        b.Vel.Y,
			Angle:     b.Angle,
			Width:     b.Width,
			Height:    b.Height,
			Mass:      b.Mass,
			Health:    b.Health,
			MaxHealth: b.MaxHealth,
			Thrust:    b.Thrust,
			Sprite:    b.Sprite,
			Cell:      b.cell,
		})
	}

	for _, l := range s.lasers {
		if !l.alive {
			continue
		}
		snap.Lasers = append(snap.Lasers, LaserState{ID: l.ID, X: l.Pos.X, Y: l.Pos.Y, Angle: l.Angle})
	}

	for _, e := range s.effects {
		p := e.Pos()
		snap.Effects = append(snap.Effects, EffectState{ID: e.ID, Kind: e.Kind, X: p.X, Y: p.Y, Frame: e.Frame})
	}

	if s.player != nil {
		snap.PlayerHealth = s.player.Health
		snap.PlayerMaxHealth = s.player.MaxHealth
		if s.player.alive {
			snap.PlayerID = s.player.ID
		}
	}

	return snap
}

// SnapshotWriter streams snapshots as consecutive msgpack values
type SnapshotWriter struct {
	enc   *msgpack.Encoder
	count int
}

// NewSnapshotWriter creates a writer over w
func NewSnapshotWriter(w io.Writer) *SnapshotWriter {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return &SnapshotWriter{enc: enc}
}

// Write appends one snapshot to the stream
func (w *SnapshotWriter) Write(s *Snapshot) error {
	if err := w.enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot %d: %w", s.Tick, err)
	}
	w.count++
	return nil
}

// Count returns the number of snapshots written
func (w *SnapshotWriter) Count() int {
	return w.count
}

// SnapshotReader reads a stream produced by SnapshotWriter
type SnapshotReader struct {
	dec *msgpack.Decoder
}

// NewSnapshotReader creates a reader over r
func NewSnapshotReader(r io.Reader) *SnapshotReader {
	return &SnapshotReader{dec: msgpack.NewDecoder(r)}
}

// Next decodes the next snapshot. It returns io.EOF at the end of the stream.
func (r *SnapshotReader) Next() (*Snapshot, error) {
	var s Snapshot
	if err := r.dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}
