package mcts

// Visit and score counters of a node. Score is the sum (not the average)
// of every reward backpropagated through the node
type NodeStats struct {
	visits int32
	score  Result
}

// Get number of visits to this node
func (stats *NodeStats) N() int32 {
	return stats.visits
}

// Cumulated rewards for this node
func (stats *NodeStats) Q() Result {
	return stats.score
}

// Average reward, 0 for a node that was never visited
func (stats *NodeStats) AvgQ() Result {
	if stats.visits == 0 {
		return 0
	}
	return stats.score / Result(stats.visits)
}

// Record exactly one simulation outcome
func (stats *NodeStats) AddOutcome(result Result) {
	stats.visits++
	stats.score += result
}
