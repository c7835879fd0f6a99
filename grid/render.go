// SPDX-License-Identifier: MIT

package grid

import (
	"io"
	"strconv"
	"strings"
)

const (
	_fmtSep     = ' '
	_fmtRowEnd  = '\n'
	_maxUintLen = 10 // digits in math.MaxUint32
)

// Display renders the grid as text: every occupant in decimal followed by a
// single space, and a newline after the last cell of each row.
//
//	1 0 \n
//	0 1 \n
//
// Rows appear in increasing y, columns in increasing x. An empty grid renders
// as "".
// Complexity: O(W×H).
func (g *Grid) Display() string {
	if len(g.cells) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(g.cells)*(_maxUintLen+1) + int(g.height))
	buf := make([]byte, 0, _maxUintLen)
	last := uint64(g.width) - 1
	for i, v := range g.cells {
		buf = strconv.AppendUint(buf[:0], uint64(v), 10)
		sb.Write(buf)
		sb.WriteByte(_fmtSep)
		if uint64(i)%uint64(g.width) == last {
			sb.WriteByte(_fmtRowEnd)
		}
	}

	return sb.String()
}

// String implements fmt.Stringer; it is identical to Display.
func (g *Grid) String() string {
	return g.Display()
}

// WriteTo writes the Display form of g to w. It implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Display())

	return int64(n), err
}
