package das

import (
	"testing"

	"github.com/ethereum/go-peerdas-kzg/params"
)

func TestColumnSubnetModulo(t *testing.T) {
	for _, c := range []uint64{0, 1, params.DataColumnSidecarSubnetCount - 1, params.DataColumnSidecarSubnetCount, params.CellsPerExtBlob - 1} {
		got := ColumnSubnet(c)
		want := c % params.DataColumnSidecarSubnetCount
		if got != want {
			t.Fatalf("ColumnSubnet(%d) = %d want %d", c, got, want)
		}
		if got >= params.DataColumnSidecarSubnetCount {
			t.Fatalf("ColumnSubnet(%d) = %d out of subnet range", c, got)
		}
	}
}
