package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	// leafThreshold: spans of this many shapes or fewer become a leaf
	leafThreshold = 4
	// maxBVHDepth: spans reaching this depth become a leaf regardless of size
	maxBVHDepth = 32
	// splitCandidates is the approximate number of split positions scored per span
	splitCandidates = 16
	// traversalStackSize bounds the explicit stack; each level adds at most one pending sibling
	traversalStackSize = maxBVHDepth + 2
)

// bvhNode is a node in the flattened hierarchy. Leaves have count > 0 and reference
// shapes[start:start+count]; inner nodes reference two children by index.
type bvhNode struct {
	bbox        core.AABB
	left, right int32
	start       int32
	count       int32
}

func (n *bvhNode) isLeaf() bool {
	return n.count > 0
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a single slice and address children by index; node 0 is the root.
type BVH struct {
	nodes  []bvhNode
	shapes []Shape // Shapes reordered so every leaf owns a contiguous range
	stats  BVHStats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	TotalShapes  int
	MaxDepth     int
	AvgLeafDepth float64
	AvgLeafSize  float64
}

// String formats the statistics for logging
func (s BVHStats) String() string {
	return fmt.Sprintf("%d nodes, %d leaves, %d shapes, %.2f avg shapes/leaf, %d max depth, %.2f avg depth",
		s.TotalNodes, s.LeafNodes, s.TotalShapes, s.AvgLeafSize, s.MaxDepth, s.AvgLeafDepth)
}

// childSlot says which field of the parent a finished node must be written into
type childSlot int

const (
	rootSlot childSlot = iota
	leftSlot
	rightSlot
)

// buildItem is a pending span of shapes waiting to become a node
type buildItem struct {
	parent     int32
	slot       childSlot
	depth      int
	start, end int
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not modified.
func NewBVH(shapes []Shape) *BVH {
	// Work on a copy; construction reorders shapes
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	bvh := &BVH{shapes: shapesCopy}
	if len(shapesCopy) == 0 {
		return bvh
	}

	bvh.build()
	bvh.checkCoverage()
	return bvh
}

// build processes spans breadth-first from a FIFO worklist, back-patching each new
// node's index into its parent once the node exists
func (bvh *BVH) build() {
	queue := []buildItem{{parent: -1, slot: rootSlot, depth: 0, start: 0, end: len(bvh.shapes)}}
	depthSum := 0

	for head := 0; head < len(queue); head++ {
		item := queue[head]
		span := bvh.shapes[item.start:item.end]
		index := int32(len(bvh.nodes))
		bbox := WrapShapes(span)

		if len(span) <= leafThreshold || item.depth >= maxBVHDepth {
			bvh.nodes = append(bvh.nodes, bvhNode{
				bbox:  bbox,
				start: int32(item.start),
				count: int32(len(span)),
			})
			bvh.stats.LeafNodes++
			bvh.stats.MaxDepth = max(bvh.stats.MaxDepth, item.depth)
			depthSum += item.depth
		} else {
			bvh.nodes = append(bvh.nodes, bvhNode{bbox: bbox, left: -1, right: -1})

			split := item.start + bestSplit(span, bbox.LongestAxis())
			queue = append(queue,
				buildItem{parent: index, slot: leftSlot, depth: item.depth + 1, start: item.start, end: split},
				buildItem{parent: index, slot: rightSlot, depth: item.depth + 1, start: split, end: item.end},
			)
		}

		switch item.slot {
		case leftSlot:
			bvh.nodes[item.parent].left = index
		case rightSlot:
			bvh.nodes[item.parent].right = index
		}
	}

	bvh.stats.TotalNodes = len(bvh.nodes)
	bvh.stats.TotalShapes = len(bvh.shapes)
	bvh.stats.AvgLeafDepth = float64(depthSum) / float64(bvh.stats.LeafNodes)
	bvh.stats.AvgLeafSize = float64(len(bvh.shapes)) / float64(bvh.stats.LeafNodes)
}

// bestSplit sorts span by bounding box minimum along axis and returns the split offset
// in [1, len(span)-1] minimizing SA(left)*|left| + SA(right)*|right| over a subsampled
// set of candidates
func bestSplit(span []Shape, axis int) int {
	sort.SliceStable(span, func(i, j int) bool {
		return span[i].BoundingBox().Min.Axis(axis) < span[j].BoundingBox().Min.Axis(axis)
	})

	n := len(span)

	// suffix[i] bounds span[i:]
	suffix := make([]core.AABB, n)
	suffix[n-1] = span[n-1].BoundingBox()
	for i := n - 2; i >= 0; i-- {
		suffix[i] = core.WrapBoxes(span[i].BoundingBox(), suffix[i+1])
	}

	stride := max(1, n/splitCandidates)
	bestOffset := 1
	bestCost := 0.0
	first := true

	prefix := span[0].BoundingBox()
	next := 1 // prefix bounds span[:next]
	for split := 1; split < n; split += stride {
		for ; next < split; next++ {
			prefix = core.WrapBoxes(prefix, span[next].BoundingBox())
		}

		cost := prefix.SurfaceArea()*float64(split) + suffix[split].SurfaceArea()*float64(n-split)
		if first || cost < bestCost {
			bestOffset = split
			bestCost = cost
			first = false
		}
	}

	return bestOffset
}

// checkCoverage verifies every shape sits in exactly one reachable leaf and every node is
// reachable exactly once. A failure is a construction bug.
func (bvh *BVH) checkCoverage() {
	covered := make([]int, len(bvh.shapes))
	reached := make([]int, len(bvh.nodes))

	stack := []int32{0}
	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if index < 0 || int(index) >= len(bvh.nodes) {
			panic(fmt.Sprintf("bvh: child index %d out of range", index))
		}
		reached[index]++

		node := &bvh.nodes[index]
		if node.isLeaf() {
			for i := node.start; i < node.start+node.count; i++ {
				covered[i]++
			}
			continue
		}
		stack = append(stack, node.left, node.right)
	}

	for i, count := range reached {
		if count != 1 {
			panic(fmt.Sprintf("bvh: node %d reached %d times", i, count))
		}
	}
	for i, count := range covered {
		if count != 1 {
			panic(fmt.Sprintf("bvh: shape %d covered by %d leaves", i, count))
		}
	}
}

// Hit finds the closest intersection with any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	if len(bvh.nodes) == 0 {
		return false
	}
	if _, ok := bvh.nodes[0].bbox.Hit(ray, interval); !ok {
		return false
	}

	var stack [traversalStackSize]int32
	stack[0] = 0
	top := 1

	hitAnything := false
	closestSoFar := interval.Max

	for top > 0 {
		top--
		node := &bvh.nodes[stack[top]]

		// The upper bound only ever shrinks
		current := core.NewInterval(interval.Min, closestSoFar)

		if node.isLeaf() {
			for _, shape := range bvh.shapes[node.start : node.start+node.count] {
				if shape.Hit(ray, current, rec) {
					hitAnything = true
					closestSoFar = rec.T
					current.Max = closestSoFar
				}
			}
			continue
		}

		leftT, leftHit := bvh.nodes[node.left].bbox.Hit(ray, current)
		rightT, rightHit := bvh.nodes[node.right].bbox.Hit(ray, current)

		switch {
		case leftHit && rightHit:
			// Push the farther child first so the nearer one is processed next
			if leftT < rightT {
				stack[top], stack[top+1] = node.right, node.left
			} else {
				stack[top], stack[top+1] = node.left, node.right
			}
			top += 2
		case leftHit:
			stack[top] = node.left
			top++
		case rightHit:
			stack[top] = node.right
			top++
		}
	}

	return hitAnything
}

// BoundingBox returns the overall bounding box of the BVH (empty when it holds no shapes)
func (bvh *BVH) BoundingBox() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].bbox
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}
