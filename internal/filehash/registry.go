package filehash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/crc32"
	"sort"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm is used when a request leaves the algorithm unset.
const DefaultAlgorithm = "MD5"

// Factory returns a fresh, empty accumulator.
type Factory func() hash.Hash

type entry struct {
	name    string
	factory Factory
}

var (
	mu       sync.RWMutex
	registry = make(map[string]entry)

	separators = strings.NewReplacer("-", "", "_", "")
)

func init() {
	MustRegister("MD5", md5.New)
	MustRegister("SHA-1", sha1.New)
	MustRegister("SHA-224", sha256.New224)
	MustRegister("SHA-256", sha256.New)
	MustRegister("SHA-384", sha512.New384)
	MustRegister("SHA-512", sha512.New)
	MustRegister("SHA-512/256", sha512.New512_256)
	MustRegister("SHA3-256", sha3.New256)
	MustRegister("SHA3-512", sha3.New512)
	MustRegister("BLAKE2B-256", newBlake2b256)
	MustRegister("BLAKE2B-512", newBlake2b512)
	MustRegister("BLAKE3", func() hash.Hash { return blake3.New() })
	MustRegister("CRC32", func() hash.Hash { return crc32.NewIEEE() })
}

// blake2b only fails for an oversized key; these are unkeyed.
func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// normalize folds an algorithm name to its lookup key: upper case with
// '-' and '_' removed, so "sha256", "SHA-256" and "Sha_256" collide.
func normalize(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	return separators.Replace(name)
}

// Register adds an algorithm under the given canonical name.
//
// Names are matched case-insensitively and ignoring '-' and '_'. Registering
// a name that collides with an existing entry is an error.
func Register(name string, factory Factory) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%w: algorithm name cannot be empty", ErrInvalidArgument)
	}
	if factory == nil {
		return fmt.Errorf("%w: factory for %q cannot be nil", ErrInvalidArgument, name)
	}

	mu.Lock()
	defer mu.Unlock()

	if existing, ok := registry[key]; ok {
		return fmt.Errorf("%w: algorithm %q already registered as %q", ErrInvalidArgument, name, existing.name)
	}
	registry[key] = entry{name: strings.TrimSpace(name), factory: factory}
	return nil
}

// MustRegister registers an algorithm or panics. Intended for package init.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(fmt.Sprintf("register hash algorithm %q: %v", name, err))
	}
}

// Lookup returns a new accumulator for the named algorithm together with the
// algorithm's canonical name. An empty name selects DefaultAlgorithm.
func Lookup(name string) (hash.Hash, string, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultAlgorithm
	}

	mu.RLock()
	e, ok := registry[normalize(name)]
	mu.RUnlock()

	if !ok {
		return nil, "", fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedAlgorithm, name, strings.Join(SupportedAlgorithms(), ", "))
	}
	return e.factory(), e.name, nil
}

// SupportedAlgorithms returns the canonical names of all registered
// algorithms, sorted.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether name resolves to a registered algorithm.
func IsSupported(name string) bool {
	if strings.TrimSpace(name) == "" {
		name = DefaultAlgorithm
	}

	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[normalize(name)]
	return ok
}
