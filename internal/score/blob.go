package score

import (
	"encoding/binary"
	"fmt"
)

// BlobSize is the size of the persisted high-score record.
const BlobSize = 4

// BlobStore reads and writes one opaque record. LoadBlob returns a nil slice
// and no error when nothing has been saved yet.
type BlobStore interface {
	LoadBlob() ([]byte, error)
	SaveBlob(data []byte) error
}

// EncodeHigh packs a high score as a little-endian int32.
func EncodeHigh(high int) []byte {
	buf := make([]byte, BlobSize)
	binary.LittleEndian.PutUint32(buf, uint32(int32(high)))
	return buf
}

// DecodeHigh unpacks a record written by EncodeHigh.
func DecodeHigh(data []byte) (int, error) {
	if len(data) < BlobSize {
		return 0, fmt.Errorf("score: short high score record: %d bytes", len(data))
	}
	return int(int32(binary.LittleEndian.Uint32(data[:BlobSize]))), nil
}

// LoadHigh replaces the high score with the stored one, never letting it
// drop below the current value. A missing, short or unreadable record
// leaves the high score at the current value; the error is returned for
// logging only.
func (s *Score) LoadHigh(store BlobStore) error {
	s.high = s.value
	if store == nil {
		return nil
	}

	data, err := store.LoadBlob()
	if err != nil {
		return fmt.Errorf("score: cannot load high score: %w", err)
	}
	if data == nil {
		return nil
	}

	high, err := DecodeHigh(data)
	if err != nil {
		return err
	}
	s.high = max(high, s.value)
	return nil
}

// SaveHigh writes the high score. In-memory state is unaffected by failures.
func (s *Score) SaveHigh(store BlobStore) error {
	if store == nil {
		return nil
	}
	if err := store.SaveBlob(EncodeHigh(s.high)); err != nil {
		return fmt.Errorf("score: cannot save high score: %w", err)
	}
	return nil
}
