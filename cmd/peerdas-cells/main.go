// Command peerdas-cells exercises the cell-proof core manually: computing
// cells and proofs for a blob, verifying a single cell against a
// commitment, and recovering an extended blob from a partial cell set.
// It is a local testing/benchmarking harness, not a network client
// (SPEC_FULL.md §10.1).
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-peerdas-kzg/crypto/kzg"
	"github.com/ethereum/go-peerdas-kzg/das"
	"github.com/ethereum/go-peerdas-kzg/params"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("peerdas-cells failed", "err", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	setupFlag := &cli.StringFlag{
		Name:     "setup",
		Usage:    "path to a JSON trusted setup file",
		Required: true,
	}
	blobFlag := &cli.StringFlag{
		Name:     "blob",
		Usage:    "path to a raw blob file (BYTES_PER_BLOB bytes)",
		Required: true,
	}

	return &cli.App{
		Name:  "peerdas-cells",
		Usage: "compute, verify, and recover PeerDAS cells against a trusted setup",
		Commands: []*cli.Command{
			{
				Name:  "compute-cells",
				Usage: "compute a blob's extended cells without proofs",
				Flags: []cli.Flag{blobFlag},
				Action: func(c *cli.Context) error {
					blob, err := os.ReadFile(c.String("blob"))
					if err != nil {
						return err
					}
					cells, err := das.ComputeCells(blob)
					if err != nil {
						return err
					}
					for i, cell := range cells {
						fmt.Printf("cell[%d] = %s\n", i, hex.EncodeToString(cell[:])[:16]+"...")
					}
					slog.Info("computed cells", "count", len(cells))
					return nil
				},
			},
			{
				Name:  "compute-cells-and-proofs",
				Usage: "compute a blob's extended cells and their KZG multi-proofs",
				Flags: []cli.Flag{blobFlag, setupFlag},
				Action: func(c *cli.Context) error {
					setup, err := loadSetup(c.String("setup"))
					if err != nil {
						return err
					}
					blob, err := os.ReadFile(c.String("blob"))
					if err != nil {
						return err
					}
					cells, proofs, err := das.ComputeCellsAndProofs(blob, setup)
					if err != nil {
						return err
					}
					commitment, err := das.BlobToKZGCommitment(blob, setup)
					if err != nil {
						return err
					}
					fmt.Printf("commitment = %s\n", commitment.String())
					for i := range cells {
						fmt.Printf("cell[%d] proof = %s\n", i, hex.EncodeToString(proofs[i][:]))
					}
					slog.Info("computed cells and proofs", "count", len(cells))
					return nil
				},
			},
			{
				Name:  "verify-cell",
				Usage: "verify one cell's KZG multi-proof against a commitment",
				Flags: []cli.Flag{
					setupFlag,
					&cli.StringFlag{Name: "commitment", Required: true, Usage: "hex-encoded 48-byte commitment"},
					&cli.Uint64Flag{Name: "cell-id", Required: true},
					&cli.StringFlag{Name: "cell", Required: true, Usage: "hex-encoded cell bytes"},
					&cli.StringFlag{Name: "proof", Required: true, Usage: "hex-encoded 48-byte proof"},
				},
				Action: func(c *cli.Context) error {
					setup, err := loadSetup(c.String("setup"))
					if err != nil {
						return err
					}
					commitment, err := decodeHex(c.String("commitment"))
					if err != nil {
						return err
					}
					cell, err := decodeHex(c.String("cell"))
					if err != nil {
						return err
					}
					proof, err := decodeHex(c.String("proof"))
					if err != nil {
						return err
					}
					ok, err := das.VerifyCellKZGProof(commitment, c.Uint64("cell-id"), cell, proof, setup)
					if err != nil {
						return err
					}
					fmt.Printf("valid = %v\n", ok)
					if !ok {
						os.Exit(1)
					}
					return nil
				},
			},
			{
				Name:  "recover",
				Usage: "recover all cells of an extended blob from a partial set",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "cell-ids", Required: true, Usage: "comma-separated cell ids"},
					&cli.StringSliceFlag{Name: "cell-file", Required: true, Usage: "path to one cell file, repeatable, matching --cell-ids order"},
				},
				Action: func(c *cli.Context) error {
					ids, err := parseIDs(c.String("cell-ids"))
					if err != nil {
						return err
					}
					files := c.StringSlice("cell-file")
					if len(files) != len(ids) {
						return fmt.Errorf("expected %d cell files to match %d cell ids, got %d", len(ids), len(ids), len(files))
					}
					cells := make([][]byte, len(files))
					for i, f := range files {
						b, err := os.ReadFile(f)
						if err != nil {
							return err
						}
						cells[i] = b
					}
					recovered, err := kzg.RecoverAllCells(ids, cells)
					if err != nil {
						return err
					}
					slog.Info("recovered all cells", "count", len(recovered), "expected", params.CellsPerExtBlob)
					return nil
				},
			},
		},
	}
}

func loadSetup(path string) (*kzg.TrustedSetup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return kzg.LoadTrustedSetup(f)
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func parseIDs(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cell-ids: %w", err)
		}
		ids[i] = v
	}
	return ids, nil
}
