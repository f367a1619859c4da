package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const pcmChunk = 512

// PCM16 drains a finite streamer into interleaved little-endian signed 16-bit stereo
func PCM16(s beep.Streamer) []byte {
	buf := make([][2]float64, pcmChunk)
	out := make([]byte, 0, pcmChunk*4)
	var frame [4]byte

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
