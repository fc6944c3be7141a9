package solver

// litIndex maps a signed literal to a dense array index in the range
// [0, 2*maxVar], shared by the value/mark arrays, watch lists and
// occurrence lists so all three use the identical offset convention.
func litIndex(l Lit, maxVar int) int { return int(l) + maxVar }
