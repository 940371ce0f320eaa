package flow

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphy/network"
)

// arc is one direction of an undirected edge in the residual graph;
// arcs 2k and 2k+1 belong to edge k and are each other's reverse.
type arc struct {
	to  int
	cap int64
}

// residual is the arc-list form of a network.
type residual struct {
	arcs []arc
	out  [][]int // vertex -> indices into arcs
}

// EdmondsKarp computes the maximum flow from source to sink on the
// undirected network net, where every visible edge may carry up to
// capacity(e) in either direction. Removed vertices carry nothing.
//
// It returns:
//   - maxFlow: total flow value
//   - reach:   per vertex, whether it is reachable from source in the final
//     residual graph (the source side of a minimum cut)
//   - err:     non-nil on missing endpoints, negative capacities or ctx end.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	net *network.Network,
	source, sink int,
	capacity Capacity,
	opts *FlowOptions,
) (maxFlow int64, reach []bool, err error) {
	// 1) Validate endpoints
	if net == nil {
		return 0, nil, ErrNilNetwork
	}
	if !net.Has(source) {
		return 0, nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !net.Has(sink) {
		return 0, nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return 0, nil, fmt.Errorf("%w: %d", ErrSourceIsSink, source)
	}

	// 2) Build residual arcs, two per edge
	res, err := newResidual(net, capacity)
	if err != nil {
		return 0, nil, err
	}

	// 3) Augment along shortest paths until none remain
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		parent := res.bfs(source)
		if parent[sink] < 0 {
			break
		}
		bottle := res.bottleneck(source, sink, parent)
		res.push(source, sink, parent, bottle)
		maxFlow += bottle
		if opts != nil && opts.Verbose {
			klog.V(4).Infof("flow: augmented %d (total %d)", bottle, maxFlow)
		}
	}

	// 4) Source side of the final residual graph
	parent := res.bfs(source)
	reach = make([]bool, len(parent))
	for v, p := range parent {
		reach[v] = p >= 0 || v == source
	}

	return maxFlow, reach, nil
}

func newResidual(net *network.Network, capacity Capacity) (*residual, error) {
	vertices := net.Vertices()
	edges := net.Edges()
	res := &residual{
		arcs: make([]arc, 0, 2*len(edges)),
		out:  make([][]int, len(vertices)),
	}
	for _, e := range edges {
		c := capacity(e)
		if c < 0 {
			return nil, EdgeError{From: e.U, To: e.V, Cap: c}
		}
		if vertices[e.U].Removed || vertices[e.V].Removed {
			c = 0
		}
		res.out[e.U] = append(res.out[e.U], len(res.arcs))
		res.arcs = append(res.arcs, arc{to: e.V, cap: c})
		res.out[e.V] = append(res.out[e.V], len(res.arcs))
		res.arcs = append(res.arcs, arc{to: e.U, cap: c})
	}

	return res, nil
}

// bfs returns, per vertex, the index of the arc used to enter it on a
// shortest positive-capacity path from source, or -1 if unreached.
// The source itself keeps -1.
func (r *residual) bfs(source int) []int {
	parent := make([]int, len(r.out))
	for v := range parent {
		parent[v] = -1
	}
	seen := make([]bool, len(r.out))
	seen[source] = true
	q := arrayqueue.New()
	q.Enqueue(source)
	for !q.Empty() {
		item, _ := q.Dequeue()
		u := item.(int)
		for _, a := range r.out[u] {
			v := r.arcs[a].to
			if seen[v] || r.arcs[a].cap <= 0 {
				continue
			}
			seen[v] = true
			parent[v] = a
			q.Enqueue(v)
		}
	}

	return parent
}

// bottleneck is the smallest residual capacity on the path to sink.
func (r *residual) bottleneck(source, sink int, parent []int) int64 {
	bottle := int64(-1)
	for v := sink; v != source; v = r.arcs[parent[v]^1].to {
		if c := r.arcs[parent[v]].cap; bottle < 0 || c < bottle {
			bottle = c
		}
	}

	return bottle
}

// push sends amount along the path to sink.
func (r *residual) push(source, sink int, parent []int, amount int64) {
	for v := sink; v != source; v = r.arcs[parent[v]^1].to {
		a := parent[v]
		r.arcs[a].cap -= amount
		r.arcs[a^1].cap += amount
	}
}
