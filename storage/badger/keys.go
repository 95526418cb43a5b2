package badger

import (
	"encoding/binary"

	"github.com/poiesic/talentq/core"
)

// Key prefixes for different data types
const (
	profilePrefix    = "prof:"
	savedQueryPrefix = "savq:"
)

// makeProfileKey generates a key for a profile by ID.
// Format: prefix + 8 byte big endian ID, so iteration runs in ID order.
func makeProfileKey(id core.ID) []byte {
	buf := make([]byte, len(profilePrefix)+8)
	offset := copy(buf, profilePrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSavedQueryKey generates a key for a saved query by name.
func makeSavedQueryKey(name string) []byte {
	buf := make([]byte, len(savedQueryPrefix)+len(name))
	offset := copy(buf, savedQueryPrefix)
	copy(buf[offset:], name)
	return buf
}
