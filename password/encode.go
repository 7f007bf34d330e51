package password

import (
	"fmt"

	"github.com/jmcleod/argonpass/internal/util"
)

// Encode turns a derived key into a password of exactly length characters
// drawn from policy's full pool.
//
// The key is first re-encoded as unpadded base64url and the ASCII values of
// that encoding drive every choice below. Each position i takes
// pool[b64[i] % len(pool)]. Then, for each class in policy order, if no
// character of the class is present yet, position idx%length is overwritten
// with class[b64[idx] % len(class)], idx being the class's position in the
// policy. A later class may overwrite an earlier class's forced character
// when length is small; existing passwords depend on that.
func Encode(key []byte, length int, policy Policy) (string, error) {
	if err := policy.validate(); err != nil {
		return "", err
	}
	if length < len(policy) {
		return "", fmt.Errorf("%w: length %d cannot hold %d required classes", ErrLengthTooShort, length, len(policy))
	}

	b64 := util.EncodeBase64URL(key)
	defer util.WipeBytes(b64)
	if len(b64) < length {
		return "", fmt.Errorf("%w: key encodes to %d characters, %d requested", ErrInsufficientKeyMaterial, len(b64), length)
	}

	pool := policy.FullPool()
	pw := make([]byte, length)
	defer util.WipeBytes(pw)
	for i := range pw {
		pw[i] = pool[int(b64[i])%len(pool)]
	}

	for idx, class := range policy {
		if !class.containsAny(pw) {
			pw[idx%length] = class.Alphabet[int(b64[idx])%len(class.Alphabet)]
		}
	}
	return string(pw), nil
}

// MaxLength returns the longest password a key of keyLen bytes can encode.
func MaxLength(keyLen int) int {
	return (keyLen*8 + 5) / 6
}
