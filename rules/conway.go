package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState applies the Conway rule unless the cell is frozen, in which case
// the current state is carried over unchanged.
func NextState(neighbors int, alive, frozen bool) bool {
	if frozen {
		return alive
	}
	return ApplyConwayRules(neighbors, alive)
}
