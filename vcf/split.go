package vcf

import "bytes"

// DefaultChunkSize is the target byte length of one scan chunk.
const DefaultChunkSize = 10 << 20

// SplitRegion cuts data into contiguous [start, end) ranges of roughly
// targetSize bytes, extending each so it ends just past a newline. No line
// ever straddles two ranges, and the ranges concatenate back to data.
func SplitRegion(data []byte, targetSize int) [][2]int {
	if targetSize <= 0 {
		targetSize = DefaultChunkSize
	}

	var chunks [][2]int
	for start := 0; start < len(data); {
		end := start + targetSize
		if end >= len(data) {
			chunks = append(chunks, [2]int{start, len(data)})
			break
		}
		if i := bytes.IndexByte(data[end:], '\n'); i >= 0 {
			end += i + 1
		} else {
			end = len(data)
		}
		chunks = append(chunks, [2]int{start, end})
		start = end
	}

	return chunks
}
