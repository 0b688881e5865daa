// Package basin implements basin-to-basin flow accumulation over a
// directed acyclic graph of drainage basins (SPEC_FULL.md §4.H), adapted
// from the teacher's basin package (basin/basin.go) and model/router.go,
// which both centered on a downstream-id map (ds map[int]int) walked with
// github.com/maseology/mmaths.OrderFromToTree. The accumulation walk
// itself follows original_source/wsim.lsm/src/b2b_accum.cpp's two-state
// (queued/visited) explicit stack, rather than recursion, to avoid
// stack-depth limits on long river networks.
package basin

import (
	"fmt"

	"github.com/maseology/mmaths"
)

// Graph is a basin adjacency description: parallel slices of basin IDs,
// each basin's downstream ID (non-positive marks a river mouth / sink),
// and the flow generated within each basin.
type Graph struct {
	IDs           []int
	DownstreamIDs []int
	Flows         []float64
}

type node struct {
	id         int
	downstream *node
	upstream   []*node
	flow       float64

	flowOut        float64
	flowDownstream float64
	visited        bool
}

func (n *node) isHeadwater() bool { return len(n.upstream) == 0 }
func (n *node) isMouth() bool     { return n.downstream == nil }

// TopologicalOrder returns the basin IDs of downstream in an order safe
// for upstream-to-downstream processing, following the teacher's use of
// mmaths.OrderFromToTree in model/router.go to order a downstream-id map
// before routing. It also serves to detect cycles: OrderFromToTree
// panics on a malformed (cyclic) tree, which the deferred recover here
// turns into the returned error that Accumulate passes on.
func TopologicalOrder(downstream map[int]int, sink int) (order []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("basin: invalid basin graph: %v", r)
		}
	}()
	order = mmaths.OrderFromToTree(downstream, sink)
	return order, nil
}

// Accumulate computes, for each basin, the total flow at its outlet
// (its own generated flow plus that of every upstream basin), following
// b2b_accum.cpp's accumulate.
func Accumulate(g Graph) ([]float64, error) {
	out, _, err := accumulateImpl(g)
	return out, err
}

// DownstreamFlow computes, for each basin, the sum of flow generated
// strictly downstream of it, following b2b_accum.cpp's downstream_flow.
func DownstreamFlow(g Graph) ([]float64, error) {
	_, out, err := accumulateImpl(g)
	return out, err
}

func accumulateImpl(g Graph) (flowOut, flowDownstream []float64, err error) {
	n := len(g.IDs)
	if len(g.DownstreamIDs) != n {
		return nil, nil, fmt.Errorf("basin: expected %d downstream ids, got %d", n, len(g.DownstreamIDs))
	}
	if len(g.Flows) != n {
		return nil, nil, fmt.Errorf("basin: expected %d flows, got %d", n, len(g.Flows))
	}

	downstreamMap := make(map[int]int, n)
	for i, id := range g.IDs {
		downstreamMap[id] = g.DownstreamIDs[i]
	}
	if _, err := TopologicalOrder(downstreamMap, -1); err != nil {
		return nil, nil, err
	}

	nodes := make(map[int]*node, n)
	for i, id := range g.IDs {
		nodes[id] = &node{id: id, flow: g.Flows[i]}
	}

	for i, id := range g.IDs {
		dsID := g.DownstreamIDs[i]
		if dsID > 0 {
			ds, ok := nodes[dsID]
			if !ok {
				return nil, nil, fmt.Errorf("basin: basin %d references downstream basin %d, which does not exist", id, dsID)
			}
			nodes[id].downstream = ds
		}
	}

	var toProcess []*node
	for _, id := range g.IDs {
		b := nodes[id]
		if b.isMouth() {
			toProcess = append(toProcess, b)
		} else {
			b.downstream.upstream = append(b.downstream.upstream, b)
		}
	}

	for len(toProcess) > 0 {
		b := toProcess[len(toProcess)-1]

		if b.visited || b.isHeadwater() {
			toProcess = toProcess[:len(toProcess)-1]
			b.flowOut = b.flow
			for _, up := range b.upstream {
				b.flowOut += up.flowOut
			}
		} else {
			for _, up := range b.upstream {
				toProcess = append(toProcess, up)
				up.flowDownstream += b.flow + b.flowDownstream
			}
			b.visited = true
		}
	}

	flowOut = make([]float64, n)
	flowDownstream = make([]float64, n)
	for i, id := range g.IDs {
		flowOut[i] = nodes[id].flowOut
		flowDownstream[i] = nodes[id].flowDownstream
	}
	return flowOut, flowDownstream, nil
}
