package dither

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// PacketSize is the size of one display packet on the wire.
	PacketSize = 64

	// PacketHeaderSize is the little-endian uint32 byte offset prefix.
	PacketHeaderSize = 4

	// PacketPayloadSize is the frame data carried by one packet.
	PacketPayloadSize = PacketSize - PacketHeaderSize
)

// PackMono packs t into a 1-bit-per-pixel frame, row-major, eight pixels
// per byte with the leftmost pixel in the most significant bit. A bit is
// set when the pixel is brighter than black. A trailing partial byte is
// zero-padded.
func PackMono(t *Texture, black uint8) []byte {
	n := len(t.pix)
	frame := make([]byte, (n+7)/8)
	for i, v := range t.pix {
		if v > black {
			frame[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return frame
}

// UnpackMono expands a packed frame back into a texture of the given
// size, set bits becoming lv.White and clear bits lv.Black.
func UnpackMono(frame []byte, cfg Config, lv Levels) (*Texture, error) {
	t, err := NewTexture(cfg)
	if err != nil {
		return nil, err
	}
	if need := (len(t.pix) + 7) / 8; len(frame) < need {
		return nil, fmt.Errorf("%w: frame has %d bytes, need %d", ErrOutOfBounds, len(frame), need)
	}
	for i := range t.pix {
		if frame[i/8]&(1<<(7-uint(i%8))) != 0 {
			t.pix[i] = lv.White
		} else {
			t.pix[i] = lv.Black
		}
	}
	return t, nil
}

// WriteFrame splits frame into packets of PacketPayloadSize bytes, each
// preceded by the little-endian uint32 offset of its first byte, and
// writes them to w. It returns the number of packets written.
func WriteFrame(w io.Writer, frame []byte) (int, error) {
	var buf [PacketSize]byte
	packets := 0
	for off := 0; off < len(frame); off += PacketPayloadSize {
		end := min(off+PacketPayloadSize, len(frame))
		binary.LittleEndian.PutUint32(buf[:PacketHeaderSize], uint32(off))
		n := copy(buf[PacketHeaderSize:], frame[off:end])
		if _, err := w.Write(buf[:PacketHeaderSize+n]); err != nil {
			return packets, fmt.Errorf("write packet at offset %d: %w", off, err)
		}
		packets++
	}
	Logger().Debug("frame written", "bytes", len(frame), "packets", packets)
	return packets, nil
}
