package fixtures

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/snappy"
)

// DecompressionFixture 解压缩游戏的fixture标识符
type DecompressionFixture string

// 解压缩游戏的预定场景：按区块高度区间命名的压缩blob
const (
	DecompressionBlob14133451To14136885 DecompressionFixture = "blob_14133451_14136885"
	DecompressionBlob14136885To14140319 DecompressionFixture = "blob_14136885_14140319"
	DecompressionBlobSmallRange         DecompressionFixture = "blob_small_range"
)

// decompressionRanges 各场景的区块高度区间与原始负载规模
var decompressionRanges = map[DecompressionFixture]struct {
	firstHeight uint64
	lastHeight  uint64
	payloadSize int
}{
	DecompressionBlob14133451To14136885: {14133451, 14136885, 8192},
	DecompressionBlob14136885To14140319: {14136885, 14140319, 8192},
	DecompressionBlobSmallRange:         {100, 105, 512},
}

// AllDecompressionFixtures 枚举解压缩游戏的全部fixture
func AllDecompressionFixtures() []DecompressionFixture {
	return []DecompressionFixture{
		DecompressionBlob14133451To14136885,
		DecompressionBlob14136885To14140319,
		DecompressionBlobSmallRange,
	}
}

// ParseDecompressionFixture 解析fixture名称
func ParseDecompressionFixture(s string) (DecompressionFixture, error) {
	f := DecompressionFixture(s)
	if _, ok := decompressionRanges[f]; !ok {
		return "", fmt.Errorf("unknown decompression fixture: %q", s)
	}
	return f, nil
}

// DecompressionInput 将fixture映射为解压缩游戏的原始见证输入
//
// 输入布局（客体程序的期望编码）：
//
//	firstHeight(u64 BE) || lastHeight(u64 BE) || snappy(payload)
//
// payload 由fixture名称确定性展开后作snappy块压缩。
func DecompressionInput(fixture DecompressionFixture) ([]byte, error) {
	r, ok := decompressionRanges[fixture]
	if !ok {
		return nil, fmt.Errorf("unknown decompression fixture: %q", fixture)
	}

	payload := newDeterministicStream("decompression/payload/" + string(fixture)).nextBytes(r.payloadSize)
	compressed := snappy.Encode(nil, payload)

	input := make([]byte, 0, 16+len(compressed))
	var heightBuf [8]byte
	binary.BigEndian.PutUint64(heightBuf[:], r.firstHeight)
	input = append(input, heightBuf[:]...)
	binary.BigEndian.PutUint64(heightBuf[:], r.lastHeight)
	input = append(input, heightBuf[:]...)
	input = append(input, compressed...)
	return input, nil
}
