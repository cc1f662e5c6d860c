package engine

// Kick is a candidate offset tried when a base rotation collides.
// DY is positive downward (screen rows).
type Kick struct {
	DX int
	DY int
}

type kickKey struct {
	from int
	to   int
}

// kickTable holds the offsets shared by every kind except I. The first
// entry is the unkicked base position. Offsets are tried strictly in table
// order; first fit wins.
var kickTable = map[kickKey][]Kick{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

// kickTableI holds the I-specific offsets; the long piece pivots around a
// point between cells and needs wider kicks.
var kickTableI = map[kickKey][]Kick{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// KickOffsets returns the ordered offsets to probe for a rotation of the
// given kind from one rotation index to another. The O kind never kicks.
func KickOffsets(k Kind, from, to int) []Kick {
	if k == KindO {
		return nil
	}
	key := kickKey{from: from, to: to}
	if k == KindI {
		if offs, ok := kickTableI[key]; ok {
			return offs
		}
	} else if offs, ok := kickTable[key]; ok {
		return offs
	}
	// Unreachable for valid rotation indices; fall back to the bare attempt.
	return []Kick{{0, 0}}
}
