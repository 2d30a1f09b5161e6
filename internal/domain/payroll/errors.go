package payroll

import "errors"

var (
	ErrUnknownRegime    = errors.New("tax regime must be \"new\" or \"old\"")
	ErrSlabsEmpty       = errors.New("tax schedule needs at least one slab")
	ErrSlabOrder        = errors.New("tax slabs must be strictly ascending")
	ErrSlabNotFinal     = errors.New("only the final tax slab may be unbounded")
	ErrSlabBoundedFinal = errors.New("final tax slab must be unbounded")
)
