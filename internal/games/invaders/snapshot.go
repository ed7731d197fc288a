package invaders

// Snapshot contains the complete game state for determinism testing and summaries.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Mode     int // 0=Wave, 1=Endless
	Score    int
	Lives    int
	Wave     int
	GameOver bool
	Paused   bool

	PlayerX int
	PlayerY int

	AnimFrame   int
	AnimElapsed float64

	Alive int

	// Enemy states (each enemy is 5 ints: X, Y, Kind, HP, DeathTimer)
	EnemyData []int

	// Projectile states (each projectile is 3 ints: X, Y, Dir)
	ProjectileCount int
	ProjectileData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]int, len(w.Enemies)*5)
	for i, e := range w.Enemies {
		idx := i * 5
		enemyData[idx] = e.X
		enemyData[idx+1] = e.Y
		enemyData[idx+2] = int(e.Kind)
		enemyData[idx+3] = e.HP
		enemyData[idx+4] = w.DeathTimers[i]
	}

	projData := make([]int, w.Projectiles.Len()*3)
	for i := range w.Projectiles.Len() {
		p := w.Projectiles.At(i)
		idx := i * 3
		projData[idx] = p.X
		projData[idx+1] = p.Y
		projData[idx+2] = p.Dir
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     int(g.mode),
		Score:    g.score,
		Lives:    w.Player.Lives,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Paused:   g.paused,

		PlayerX: w.Player.X,
		PlayerY: w.Player.Y,

		AnimFrame:   w.Animation.FrameIndex(),
		AnimElapsed: w.Animation.Elapsed(),

		Alive: w.AliveCount(),

		EnemyData:       enemyData,
		ProjectileCount: w.Projectiles.Len(),
		ProjectileData:  projData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnimFrame) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
