package proving

// Stdin 见证输入暂存通道
//
// 每次 execute/prove 调用使用一个全新的 Stdin，按写入顺序向
// 客体程序提供原始见证字节。通道本身不解释内容。
type Stdin struct {
	buffers [][]byte
}

// NewStdin 创建空的输入通道
func NewStdin() *Stdin {
	return &Stdin{}
}

// WriteSlice 追加一段原始输入字节
func (s *Stdin) WriteSlice(data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	s.buffers = append(s.buffers, buf)
}

// Buffers 返回按写入顺序排列的输入段
func (s *Stdin) Buffers() [][]byte {
	return s.buffers
}

// Bytes 返回所有输入段拼接后的字节序列
func (s *Stdin) Bytes() []byte {
	var n int
	for _, b := range s.buffers {
		n += len(b)
	}
	out := make([]byte, 0, n)
	for _, b := range s.buffers {
		out = append(out, b...)
	}
	return out
}
