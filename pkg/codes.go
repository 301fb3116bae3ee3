package pkg

import (
	"strings"
)

// Code is a prefix code of Len bits, stored right-aligned in Bits with the
// first bit to emit as the most significant of the Len.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps each symbol of a tree to its code.
type CodeTable map[byte]Code

// GenerateCodes derives the code table of root: left edges are 0, right
// edges are 1. A root that is itself a leaf gets the 1-bit code "0".
//
// Tree depth is bounded by the total weight, which is at most 2^32-1, so
// every code fits in 64 bits.
func GenerateCodes(root *HuffmanNode) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.IsLeaf() {
		codes[root.symbol] = Code{Bits: 0, Len: 1}
		return codes
	}
	generateCodes(root, codes, Code{})
	return codes
}

func generateCodes(node *HuffmanNode, codes CodeTable, prefix Code) {
	if node.IsLeaf() {
		codes[node.symbol] = prefix
		return
	}
	generateCodes(node.left, codes, Code{Bits: prefix.Bits << 1, Len: prefix.Len + 1})
	generateCodes(node.right, codes, Code{Bits: prefix.Bits<<1 | 1, Len: prefix.Len + 1})
}
