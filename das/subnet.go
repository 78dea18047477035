package das

import "github.com/ethereum/go-peerdas-kzg/params"

// ColumnSubnet maps a column index to the gossip subnet that carries it
// (SPEC_FULL.md §6, §10.3). The full custody-group / NodeID-weighted subnet
// assignment a P2P layer uses to pick which columns to sample is out of
// scope (§1); this is only the pure index mapping gossip validation needs
// to pick a topic name.
func ColumnSubnet(columnIndex uint64) uint64 {
	return columnIndex % params.DataColumnSidecarSubnetCount
}
