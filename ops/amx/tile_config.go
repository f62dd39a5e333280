package amx

import (
	"fmt"
	"unsafe"
)

// TileConfigData represents the 64-byte tile configuration structure
// This must match the hardware layout exactly: palette and start row,
// 14 reserved bytes, colsb words at offset 16, rows bytes at offset 48.
type TileConfigData struct {
	Palette  uint8      // Palette ID (must be 1)
	StartRow uint8      // Starting row (must be 0)
	Reserved [14]uint8  // Reserved (must be 0)
	ColsB    [16]uint16 // Bytes per row for each tile (16 tiles max)
	Rows     [16]uint8  // Number of rows for each tile
}

// Tile assignments for the BF16 dot-product probe.
const (
	tileC = 0 // tmm0: 16×16 FP32 accumulator
	tileA = 1 // tmm1: 16×32 BF16
	tileB = 2 // tmm2: 16×32 BF16
)

// ConfigureBF16DotProduct creates the tile configuration for the probe:
// one FP32 accumulator tile and two BF16 source tiles, all 16 rows of
// 64 bytes.
func ConfigureBF16DotProduct() *TileConfigData {
	cfg := &TileConfigData{
		Palette:  1, // Must be 1
		StartRow: 0, // Must be 0
	}
	for _, t := range []int{tileC, tileA, tileB} {
		cfg.Rows[t] = 16
		cfg.ColsB[t] = 64
	}
	return cfg
}

// ValidateConfig checks if tile configuration is valid
func ValidateConfig(cfg *TileConfigData) error {
	if cfg.Palette != 1 {
		return fmt.Errorf("palette must be 1, got %d", cfg.Palette)
	}

	if cfg.StartRow != 0 {
		return fmt.Errorf("start row must be 0, got %d", cfg.StartRow)
	}

	totalBytes := 0
	for i := 0; i < 8; i++ {
		if cfg.Rows[i] > 0 {
			if cfg.Rows[i] > 16 {
				return fmt.Errorf("tile %d: rows %d exceeds maximum 16", i, cfg.Rows[i])
			}
			if cfg.ColsB[i] > 64 {
				return fmt.Errorf("tile %d: colsB %d exceeds maximum 64", i, cfg.ColsB[i])
			}
			tileBytes := int(cfg.Rows[i]) * int(cfg.ColsB[i])
			if tileBytes > 1024 {
				return fmt.Errorf("tile %d: size %d exceeds maximum 1024 bytes", i, tileBytes)
			}
			totalBytes += tileBytes
		}
	}

	// Total tile register space
	if totalBytes > 8192 {
		return fmt.Errorf("total tile size %d exceeds maximum 8192 bytes", totalBytes)
	}

	return nil
}

// GetConfigBytes returns the 64-byte configuration as a byte slice
func GetConfigBytes(cfg *TileConfigData) []byte {
	return (*[64]byte)(unsafe.Pointer(cfg))[:]
}
