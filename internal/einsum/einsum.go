// Package einsum implements generalized tensor contraction over integer
// axis tags.
//
// Every axis of every operand is named by an integer tag. Tags listed in the
// output are free and order the result's axes; every other tag is summed.
// Integer tags make the tag space unbounded, unlike single-letter einsum
// notation.
package einsum

import (
	"fmt"
	"strings"

	"github.com/born-ml/multiway/internal/parallel"
	"github.com/born-ml/multiway/internal/tensor"
)

// Contract evaluates a generalized contraction over the operands.
//
// subscripts[k] assigns one tag per axis of operands[k]; output lists the
// free tags in result-axis order. A tag repeated within one operand
// addresses its diagonal. An empty output produces a scalar (order-0)
// tensor.
//
// result[free...] = sum over all summed-tag combinations of the product of
// operand elements addressed by the combined tag assignment.
func Contract(operands []*tensor.Dense, subscripts [][]int, output []int) (*tensor.Dense, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("einsum: no operands")
	}
	if len(subscripts) != len(operands) {
		return nil, fmt.Errorf("einsum: %d subscript lists for %d operands", len(subscripts), len(operands))
	}

	// Collect tag sizes; the first occurrence fixes the size, every later
	// occurrence must agree.
	sizes := make(map[int]int)
	var order []int // tags in first-appearance order
	for k, sub := range subscripts {
		op := operands[k]
		if len(sub) != op.NumDims() {
			return nil, fmt.Errorf("einsum: operand %d has %d axes but %d tags", k, op.NumDims(), len(sub))
		}
		for i, tag := range sub {
			dim := op.Shape()[i]
			if sz, ok := sizes[tag]; ok {
				if sz != dim {
					return nil, fmt.Errorf("einsum %s: tag size mismatch on operand %d axis %d: %d vs %d",
						Format(subscripts, output), k, i, dim, sz)
				}
			} else {
				sizes[tag] = dim
				order = append(order, tag)
			}
		}
	}

	free := make(map[int]bool, len(output))
	for _, tag := range output {
		if _, ok := sizes[tag]; !ok {
			return nil, fmt.Errorf("einsum: output tag %d appears in no operand", tag)
		}
		if free[tag] {
			return nil, fmt.Errorf("einsum: output tag %d repeated", tag)
		}
		free[tag] = true
	}

	var summed []int
	for _, tag := range order {
		if !free[tag] {
			summed = append(summed, tag)
		}
	}

	outShape := make(tensor.Shape, len(output))
	for i, tag := range output {
		outShape[i] = sizes[tag]
	}
	result := tensor.Zeros(outShape)

	// Per-operand stride per tag; a tag repeated within an operand
	// accumulates strides, which walks the diagonal.
	tagStride := make([]map[int]int, len(operands))
	for k, sub := range subscripts {
		m := make(map[int]int)
		strides := operands[k].Strides()
		for i, tag := range sub {
			m[tag] += strides[i]
		}
		tagStride[k] = m
	}
	freeStrides := make([][]int, len(operands))
	sumStrides := make([][]int, len(operands))
	for k := range operands {
		fs := make([]int, len(output))
		for i, tag := range output {
			fs[i] = tagStride[k][tag] // zero when the operand lacks the tag
		}
		ss := make([]int, len(summed))
		for i, tag := range summed {
			ss[i] = tagStride[k][tag]
		}
		freeStrides[k] = fs
		sumStrides[k] = ss
	}
	sumSizes := make([]int, len(summed))
	for i, tag := range summed {
		sumSizes[i] = sizes[tag]
	}

	outStrides := outShape.ComputeStrides()
	data := result.Data()
	// Each output element is computed entirely by one goroutine, so the
	// result is deterministic regardless of chunking.
	parallel.For(result.NumElements(), func(flat int) {
		coords := make([]int, len(output))
		rem := flat
		for i := range coords {
			coords[i] = rem / outStrides[i]
			rem %= outStrides[i]
		}
		base := make([]int, len(operands))
		for k := range operands {
			off := 0
			for i, c := range coords {
				off += c * freeStrides[k][i]
			}
			base[k] = off
		}
		data[flat] = sumProduct(operands, base, sumStrides, sumSizes)
	}, parallel.DefaultConfig())

	return result, nil
}

// sumProduct accumulates the product of operand elements over every
// combination of summed-tag indices, odometer style.
func sumProduct(operands []*tensor.Dense, base []int, sumStrides [][]int, sumSizes []int) float64 {
	idx := make([]int, len(sumSizes))
	total := 0.0
	for {
		prod := 1.0
		for k, op := range operands {
			off := base[k]
			for i, c := range idx {
				off += c * sumStrides[k][i]
			}
			prod *= op.Data()[off]
		}
		total += prod

		d := len(idx) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < sumSizes[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return total
		}
	}
}

// Format renders the contraction as an einsum-style equation, e.g.
// "A,aA,bA->ab". Output tags become lower-case letters in output order,
// summed tags upper-case letters in appearance order; tags beyond either
// alphabet render as #n.
func Format(subscripts [][]int, output []int) string {
	names := make(map[int]string)
	for i, tag := range output {
		if _, ok := names[tag]; ok {
			continue
		}
		if i < 26 {
			names[tag] = string(rune('a' + i))
		} else {
			names[tag] = fmt.Sprintf("#%d", tag)
		}
	}
	next := 0
	symbol := func(tag int) string {
		if s, ok := names[tag]; ok {
			return s
		}
		var s string
		if next < 26 {
			s = string(rune('A' + next))
		} else {
			s = fmt.Sprintf("#%d", tag)
		}
		next++
		names[tag] = s
		return s
	}

	var b strings.Builder
	for k, sub := range subscripts {
		if k > 0 {
			b.WriteByte(',')
		}
		for _, tag := range sub {
			b.WriteString(symbol(tag))
		}
	}
	b.WriteString("->")
	for _, tag := range output {
		b.WriteString(symbol(tag))
	}
	return b.String()
}
