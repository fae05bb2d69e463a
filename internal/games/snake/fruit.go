package snake

// placementTriesPerCell bounds rejection sampling to W*H*50 draws.
const placementTriesPerCell = 50

// placeFruit moves the fruit to a uniformly random cell not covered by the
// snake. Sparse boards use rejection sampling; once the snake covers three
// quarters of the grid the free cells are enumerated instead so the number of
// draws stays bounded. Reports false when no free cell exists.
func (b *Board) placeFruit() bool {
	area := b.bounds.Area()
	free := area - b.body.Len()
	if free <= 0 {
		return false
	}

	occupied := b.occupancy()

	if free*4 > area {
		tries := area * placementTriesPerCell
		for range tries {
			p := Position{X: b.rng.Intn(b.bounds.W), Y: b.rng.Intn(b.bounds.H)}
			if !occupied[b.index(p)] {
				b.fruit = p
				return true
			}
		}
	}

	cells := make([]Position, 0, free)
	for y := 0; y < b.bounds.H; y++ {
		for x := 0; x < b.bounds.W; x++ {
			p := Position{X: x, Y: y}
			if !occupied[b.index(p)] {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return false
	}
	b.fruit = cells[b.rng.Intn(len(cells))]
	return true
}

// occupancy returns a row-major mask of the cells covered by the snake.
func (b *Board) occupancy() []bool {
	occupied := make([]bool, b.bounds.Area())
	for i := 0; i < b.body.Len(); i++ {
		p := b.body.At(i)
		if b.bounds.Contains(p.X, p.Y) {
			occupied[b.index(p)] = true
		}
	}
	return occupied
}

func (b *Board) index(p Position) int {
	return p.Y*b.bounds.W + p.X
}
