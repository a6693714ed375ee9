package astar

// PriorityQueueItem is one frontier entry. Path runs from the start to Node.
type PriorityQueueItem struct {
	Node     Cell
	GScore   int
	FCost    int
	Sequence uint64
	Path     []Cell
}

// PriorityQueue is a min-heap over (FCost, GScore, Sequence).
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }

func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.GScore != b.GScore {
		return a.GScore < b.GScore
	}
	return a.Sequence < b.Sequence
}

func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
