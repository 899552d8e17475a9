package sokoban

// isWallOrPoppedPopup reports whether (x,y) currently blocks movement:
// a static wall, or a popup that this configuration has already
// triggered (and which therefore now acts as a permanent wall).
func (cfg *Config) isWallOrPoppedPopup(x, y int) bool {
	inst := cfg.inst
	if inst.isWall(x, y) {
		return true
	}
	c := inst.cell(x, y)

	return c.kind == kindPopup && cfg.popped[c.popupID]
}

// hasBlock reports whether a block currently occupies (x,y).
func (cfg *Config) hasBlock(x, y int) bool {
	return cfg.inst.inBounds(x, y) && cfg.occupied[y][x]
}

// movePlayer moves the player to (nx,ny), sets facing, and triggers a
// popup if the landing cell is one and it has not already been
// triggered. It returns a revert closure that undoes exactly this call.
func (cfg *Config) movePlayer(nx, ny int, facing Direction) func() {
	ox, oy, of := cfg.playerX, cfg.playerY, cfg.facing
	cfg.playerX, cfg.playerY = nx, ny
	cfg.facing = facing

	c := cfg.inst.cell(nx, ny)
	poppedHere := c.kind == kindPopup && !cfg.popped[c.popupID]
	if poppedHere {
		cfg.popped[c.popupID] = true
	}

	return func() {
		cfg.playerX, cfg.playerY, cfg.facing = ox, oy, of
		if poppedHere {
			cfg.popped[c.popupID] = false
		}
	}
}

// pushBlock moves a block from (fx,fy) to (tx,ty) and returns a revert
// closure.
func (cfg *Config) pushBlock(fx, fy, tx, ty int) func() {
	cfg.occupied[fy][fx] = false
	cfg.occupied[ty][tx] = true

	return func() {
		cfg.occupied[ty][tx] = false
		cfg.occupied[fy][fx] = true
	}
}

// followForceFloor walks the force-floor chain starting at (x,y),
// which must itself be a force-floor cell, returning the first
// non-force-floor cell reached. ok is false if the chain runs into a
// wall or revisits a cell (a non-terminating chain).
func followForceFloor(inst *Instance, x, y int) (int, int, bool) {
	visited := map[[2]int]bool{}
	for {
		c := inst.cell(x, y)
		if c.kind != kindForceFloor {
			return x, y, true
		}
		if visited[[2]int{x, y}] {
			return 0, 0, false
		}
		visited[[2]int{x, y}] = true
		dx, dy := c.forceDir.delta()
		nx, ny := x+dx, y+dy
		if inst.isWall(nx, ny) {
			return 0, 0, false
		}
		x, y = nx, ny
	}
}

// generateNeighbors runs the full move-generation contract against cfg
// and returns every legal successor as an encoded, freshly-copied byte
// slice. cfg is restored to its original value before this function
// returns.
func generateNeighbors(cfg *Config) [][]byte {
	var out [][]byte
	emit := func() {
		out = append(out, encodeConfig(cfg))
	}

	for _, d := range allDirections {
		dx, dy := d.delta()
		tx, ty := cfg.playerX+dx, cfg.playerY+dy
		if cfg.isWallOrPoppedPopup(tx, ty) {
			continue
		}

		targetKind := cfg.inst.cell(tx, ty).kind
		if targetKind == kindForceFloor {
			fx, fy, ok := followForceFloor(cfg.inst, tx, ty)
			if !ok {
				continue
			}
			if cfg.isWallOrPoppedPopup(fx, fy) || cfg.hasBlock(fx, fy) {
				continue
			}
			if cfg.inst.isDeadCell(fx, fy) {
				continue // "would require pushing onto dead floor"
			}
			revert := cfg.movePlayer(fx, fy, d)
			emit()
			revert()
			continue
		}

		if cfg.hasBlock(tx, ty) {
			bx, by := tx+dx, ty+dy
			if cfg.isWallOrPoppedPopup(bx, by) || cfg.hasBlock(bx, by) {
				continue
			}
			if cfg.inst.isDeadCell(bx, by) {
				continue
			}
			revertPush := cfg.pushBlock(tx, ty, bx, by)
			revertMove := cfg.movePlayer(tx, ty, d)
			if !checkDeadlocks(cfg) {
				emit()
			}
			revertMove()
			revertPush()
			continue
		}

		// plain walk
		revert := cfg.movePlayer(tx, ty, d)
		emit()
		revert()
	}

	out = append(out, generateSlaps(cfg)...)

	return out
}

// generateSlaps implements the Chip's-Challenge-style block-slap move:
// when the player currently faces direction d
// (set by their previous step move), a block directly to the player's
// left or right (one cell over, in a direction perpendicular to d) may
// be displaced one further cell in that same perpendicular direction,
// without the player moving. This does not change facing, since the
// player itself does not step.
func generateSlaps(cfg *Config) [][]byte {
	if cfg.facing == Unset {
		return nil
	}
	var out [][]byte
	for _, p := range cfg.facing.perpendiculars() {
		px, py := p.delta()
		bx, by := cfg.playerX+px, cfg.playerY+py
		if !cfg.hasBlock(bx, by) {
			continue
		}
		tx, ty := bx+px, by+py
		if cfg.isWallOrPoppedPopup(tx, ty) || cfg.hasBlock(tx, ty) {
			continue
		}
		if cfg.inst.isDeadCell(tx, ty) {
			continue
		}
		revert := cfg.pushBlock(bx, by, tx, ty)
		if !checkDeadlocks(cfg) {
			out = append(out, encodeConfig(cfg))
		}
		revert()
	}

	return out
}

// canSlap reports whether any slap move is currently legal for facing
// direction d from cfg's player position, used by encodeFacing to
// decide whether d should be normalized away to Unset.
func canSlap(cfg *Config, d Direction) bool {
	if d == Unset {
		return false
	}
	for _, p := range d.perpendiculars() {
		px, py := p.delta()
		bx, by := cfg.playerX+px, cfg.playerY+py
		if !cfg.hasBlock(bx, by) {
			continue
		}
		tx, ty := bx+px, by+py
		if cfg.isWallOrPoppedPopup(tx, ty) || cfg.hasBlock(tx, ty) {
			continue
		}
		if !cfg.inst.isDeadCell(tx, ty) {
			return true
		}
	}

	return false
}
