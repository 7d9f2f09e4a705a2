// Package blockid defines BlockId in its own package: both the layout
// (which orders blocks) and the instruction system (whose terminators
// name branch destinations) need the handle without needing each other.
package blockid

import "fmt"

// BlockId addresses a basic block within a function's Layout.
type BlockId uint32

func (b BlockId) String() string { return fmt.Sprintf("block%d", uint32(b)) }
