package pkg

import (
	"container/heap"
)

// HuffmanNode is either a leaf carrying a symbol or an internal node whose
// weight is the sum of its two children. A built tree is never mutated.
type HuffmanNode struct {
	symbol byte
	weight uint64
	left   *HuffmanNode
	right  *HuffmanNode
	seq    int // insertion order, breaks weight ties
	index  int // for heap
}

func (n *HuffmanNode) IsLeaf() bool   { return n.left == nil && n.right == nil }
func (n *HuffmanNode) Symbol() byte   { return n.symbol }
func (n *HuffmanNode) Weight() uint64 { return n.weight }

type huffmanHeap []*HuffmanNode

func (h huffmanHeap) Len() int { return len(h) }
func (h huffmanHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h huffmanHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *huffmanHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*HuffmanNode)
	node.index = n
	*h = append(*h, node)
}
func (h *huffmanHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return node
}

// BuildTree constructs the Huffman tree for freqs.
//
// Leaves are queued in ascending symbol order and every merged node is
// queued after all nodes created before it. Equal weights are popped in
// queue order, so the same table always yields the same tree. The first
// node popped becomes the left child.
//
// A single-symbol table yields a lone leaf as the root.
func BuildTree(freqs FrequencyTable) (*HuffmanNode, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	h := make(huffmanHeap, 0, len(freqs))
	seq := 0
	for _, s := range freqs.Symbols() {
		h = append(h, &HuffmanNode{symbol: s, weight: uint64(freqs[s]), seq: seq, index: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*HuffmanNode)
		right := heap.Pop(&h).(*HuffmanNode)
		heap.Push(&h, &HuffmanNode{
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
			seq:    seq,
		})
		seq++
	}

	return heap.Pop(&h).(*HuffmanNode), nil
}
