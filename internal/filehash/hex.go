package filehash

import (
	"encoding/hex"
	"fmt"
)

// ToHex renders b as lowercase hexadecimal, high nibble first.
//
// A nil slice is rejected; an empty, non-nil slice yields "".
func ToHex(b []byte) (string, error) {
	if b == nil {
		return "", fmt.Errorf("%w: cannot hex-encode nil bytes", ErrInvalidArgument)
	}
	return hex.EncodeToString(b), nil
}
