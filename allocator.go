package main

// AllocateNext hands counterID the next block of its lane and advances the
// lane's global counter. Unknown ids leave state untouched and return false.
//
// The block ends at the next multiple of the lane's current range size above
// the lane counter. With a fixed size, blocks never overlap however many
// counters share the lane. After a size change the first new block is aligned
// to the new size and may reuse numbers below the old lane counter.
func AllocateNext(state *QueueState, counterID int) (*Counter, bool) {
	c := state.FindCounter(counterID)
	if c == nil {
		return nil, false
	}

	lf, ok := laneFields[c.Lane]
	if !ok {
		lf = laneFields[LaneRegular]
	}
	global, size := lf.counter(state), lf.size(state)
	if *size < 1 {
		*size = DEFAULT_RANGE_SIZE
	}

	currentRange := *global / *size
	nextRange := currentRange + 1
	base := nextRange * *size

	c.RangeStart = base - (*size - 1)
	c.RangeEnd = base
	c.CurrentNumber = c.RangeStart

	*global = base
	return c, true
}
