package decompression

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/golang/snappy"

	"github.com/fuellabs/fuel-proving-games/internal/core/proving/local"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// 见证输入布局（大端序）：
//
//	firstHeight uint64
//	lastHeight  uint64
//	compressed  snappy块格式载荷
const guestHeaderSize = 8 + 8

// 每解压字节折算的指令开销（确定性报告用）
const (
	instructionsPerByte = 16
	syscallsPerBlock    = 3
	baseInstructions    = 1024
)

// Guest 在进程内模拟解压缩程序的行为
//
// 解析区间边界，解压载荷，提交区间的首末高度。区间非法或载荷
// 无法解压时陷入trap。
func Guest() local.Guest {
	return local.GuestFunc(func(input []byte) ([]byte, *proving.ExecutionReport, error) {
		if len(input) < guestHeaderSize {
			return nil, nil, fmt.Errorf("witness truncated: %d bytes, need at least %d", len(input), guestHeaderSize)
		}

		firstHeight := binary.BigEndian.Uint64(input[0:8])
		lastHeight := binary.BigEndian.Uint64(input[8:16])
		if firstHeight > lastHeight {
			return nil, nil, fmt.Errorf("invalid height range: first=%d > last=%d", firstHeight, lastHeight)
		}

		decompressed, err := snappy.Decode(nil, input[guestHeaderSize:])
		if err != nil {
			return nil, nil, fmt.Errorf("snappy decode failed: %w", err)
		}

		publicValues, err := publicValuesArgs.Pack(
			new(big.Int).SetUint64(firstHeight),
			new(big.Int).SetUint64(lastHeight),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("commit public values: %w", err)
		}

		blocks := lastHeight - firstHeight + 1
		report := &proving.ExecutionReport{
			TotalInstructionCount:  baseInstructions + uint64(len(decompressed))*instructionsPerByte,
			TotalSyscallCount:      blocks * syscallsPerBlock,
			TouchedMemoryAddresses: uint64(len(input) + len(decompressed)),
		}
		return publicValues, report, nil
	})
}
