package lib

import (
	"bytes"
	"crypto/rand"
	"io"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/quipu-protocol/core/quipuhash"
)

// NoncePosition selects where the nonce region sits inside the message.
type NoncePosition uint8

const (
	NoncePositionHead NoncePosition = iota
	NoncePositionTail
)

// ChallengeKind selects the predicate deciding when a digest wins.
type ChallengeKind uint8

const (
	// ChallengeLessOrEqual compares digest and target as equal-length
	// big-endian magnitudes.
	ChallengeLessOrEqual ChallengeKind = iota

	// ChallengeStartsWith requires the digest to begin with the target
	// bytes.
	ChallengeStartsWith
)

// SearchConfig describes one nonce search.
type SearchConfig struct {
	// NoncePosition is where the nonce occupies the message.
	NoncePosition NoncePosition

	// NonceLength is the nonce region size in bytes, 1..255. Four and eight
	// are the common choices.
	NonceLength int

	// NonceInData selects whether the nonce overwrites a region of the
	// caller's buffer (true) or is carried alongside it in a fresh buffer
	// (false). Either way the returned Data contains the winning nonce at
	// the configured position.
	NonceInData bool

	// NonceFromZero starts the search at the all-zero nonce instead of a
	// random seed.
	NonceFromZero bool

	// ChallengeValue is the target the challenge predicate tests against.
	ChallengeValue []byte

	// Challenge picks the predicate; the zero value is ChallengeLessOrEqual.
	Challenge ChallengeKind

	// Recipe is the ordered digest chain hashing each candidate.
	Recipe []quipuhash.Algorithm
}

// SearchResult reports a finished search or a nonce check.
type SearchResult struct {
	Data          []byte
	Nonce         []byte
	Hash          []byte
	HashCount     uint64
	HashPerSecond float64
	ElapsedMs     uint64
}

// NonceSearcher mutates a nonce region embedded in a message and rehashes
// until the challenge holds. The zero-value searcher is not usable; build
// one with NewNonceSearcher.
type NonceSearcher struct {
	// nonceSource yields the random seed bytes when NonceFromZero is unset.
	// Tests inject a deterministic source; production uses crypto/rand.
	nonceSource io.Reader

	// statsdClient reports hash-rate gauges when non-nil.
	statsdClient *statsd.Client
}

func NewNonceSearcher() *NonceSearcher {
	return &NonceSearcher{nonceSource: rand.Reader}
}

// NewNonceSearcherWithSource injects a nonce seeding source. A nil source
// falls back to crypto/rand.
func NewNonceSearcherWithSource(nonceSource io.Reader) *NonceSearcher {
	if nonceSource == nil {
		nonceSource = rand.Reader
	}
	return &NonceSearcher{nonceSource: nonceSource}
}

// SetStatsdClient attaches a metrics client. A nil client disables
// reporting.
func (searcher *NonceSearcher) SetStatsdClient(client *statsd.Client) {
	searcher.statsdClient = client
}

func validateSearchConfig(cfg *SearchConfig) (*Recipe, error) {
	if cfg.NonceLength < 1 || cfg.NonceLength > 255 {
		return nil, errors.Wrapf(ErrorInvalidConfig,
			"validateSearchConfig: nonce length %d outside [1, 255]", cfg.NonceLength)
	}
	recipe, err := NewRecipe(cfg.Recipe...)
	if err != nil {
		return nil, errors.Wrapf(err, "validateSearchConfig: ")
	}

	outputBytes := recipe.OutputBits() / 8
	switch cfg.Challenge {
	case ChallengeLessOrEqual:
		if len(cfg.ChallengeValue) != outputBytes {
			return nil, errors.Wrapf(ErrorInvalidConfig,
				"validateSearchConfig: less-or-equal target is %d bytes but the recipe "+
					"produces %d-byte digests", len(cfg.ChallengeValue), outputBytes)
		}
	case ChallengeStartsWith:
		if len(cfg.ChallengeValue) > outputBytes {
			return nil, errors.Wrapf(ErrorInvalidConfig,
				"validateSearchConfig: starts-with target is %d bytes but the recipe "+
					"produces %d-byte digests", len(cfg.ChallengeValue), outputBytes)
		}
	default:
		return nil, errors.Wrapf(ErrorInvalidConfig,
			"validateSearchConfig: unrecognized challenge kind %d", cfg.Challenge)
	}
	return recipe, nil
}

// Compute runs the search. The seeded nonce value itself is never tested:
// each iteration increments the nonce first and hashes second, matching the
// reference behavior. When the nonce region wraps back to all zeros the
// search stops with ErrorNonceSpaceExhausted rather than looping forever.
func (searcher *NonceSearcher) Compute(data []byte, cfg *SearchConfig) (*SearchResult, error) {
	recipe, err := validateSearchConfig(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "NonceSearcher.Compute: ")
	}

	nonce := make([]byte, cfg.NonceLength)
	if !cfg.NonceFromZero {
		if _, err := io.ReadFull(searcher.nonceSource, nonce); err != nil {
			return nil, errors.Wrapf(ErrorIoFailure,
				"NonceSearcher.Compute: seeding nonce: %v", err)
		}
	}

	data, nonceOffset, err := SpliceNonce(data, nonce, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "NonceSearcher.Compute: ")
	}

	glog.V(1).Infof("NonceSearcher.Compute: starting search, nonce length %d at offset %d, "+
		"%d-stage recipe", cfg.NonceLength, nonceOffset, recipe.NumStages())

	started := time.Now()
	var hashCount uint64
	var winningHash []byte
	for {
		if wrapped := IncrementNonce(data, nonceOffset, cfg.NonceLength); wrapped {
			return nil, errors.Wrapf(ErrorNonceSpaceExhausted,
				"NonceSearcher.Compute: nonce wrapped after %d hashes", hashCount)
		}
		hash, err := recipe.ComputeHash(data)
		if err != nil {
			return nil, errors.Wrapf(err, "NonceSearcher.Compute: ")
		}
		hashCount++
		if ChallengeHolds(cfg.Challenge, hash, cfg.ChallengeValue) {
			winningHash = hash
			break
		}
	}

	elapsed := time.Since(started)
	hashPerSecond := float64(hashCount) / elapsed.Seconds()
	if searcher.statsdClient != nil {
		searcher.statsdClient.Gauge("SEARCH.HASH_RATE", hashPerSecond, []string{}, 1)
		searcher.statsdClient.Count("SEARCH.HASHES", int64(hashCount), []string{}, 1)
	}

	result := &SearchResult{
		Data:          data,
		Nonce:         ExtractNonce(data, nonceOffset, cfg.NonceLength),
		Hash:          winningHash,
		HashCount:     hashCount,
		HashPerSecond: hashPerSecond,
		ElapsedMs:     uint64(elapsed.Milliseconds()),
	}
	glog.V(1).Infof("NonceSearcher.Compute: solved after %d hashes in %v (%.0f h/s)",
		hashCount, elapsed, hashPerSecond)
	glog.V(2).Infof("NonceSearcher.Compute: result: %s", spew.Sdump(result))
	return result, nil
}

// CheckNonce verifies a claimed solution. The digest is computed over data
// exactly as supplied: the caller is trusted to have embedded the nonce at
// the configured position, and the supplied nonce is only compared against
// the bytes extracted from there. HashCount is 1 on success and 0 with an
// absent hash when the challenge fails or the nonce does not match.
func (searcher *NonceSearcher) CheckNonce(data []byte, nonce []byte, cfg *SearchConfig) (*SearchResult, error) {
	recipe, err := validateSearchConfig(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "NonceSearcher.CheckNonce: ")
	}
	if cfg.NonceLength > len(data) {
		return nil, errors.Wrapf(ErrorBufferTooSmall,
			"NonceSearcher.CheckNonce: nonce length %d exceeds %d-byte data",
			cfg.NonceLength, len(data))
	}

	hash, err := recipe.ComputeHash(data)
	if err != nil {
		return nil, errors.Wrapf(err, "NonceSearcher.CheckNonce: ")
	}

	nonceOffset := 0
	if cfg.NoncePosition == NoncePositionTail {
		nonceOffset = len(data) - cfg.NonceLength
	}
	embedded := ExtractNonce(data, nonceOffset, cfg.NonceLength)

	result := &SearchResult{Data: data, Nonce: embedded}
	if ChallengeHolds(cfg.Challenge, hash, cfg.ChallengeValue) && bytes.Equal(embedded, nonce) {
		result.Hash = hash
		result.HashCount = 1
	}
	return result, nil
}

// SpliceNonce places the nonce at the configured position and returns the
// resulting buffer and the nonce offset. With NonceInData set the nonce
// overwrites the head or tail of the caller's buffer in place; otherwise a
// fresh buffer carrying nonce plus payload is returned.
func SpliceNonce(data []byte, nonce []byte, cfg *SearchConfig) (_data []byte, _nonceOffset int, _err error) {
	if cfg.NonceInData {
		if len(nonce) > len(data) {
			return nil, 0, errors.Wrapf(ErrorBufferTooSmall,
				"SpliceNonce: nonce length %d exceeds %d-byte data", len(nonce), len(data))
		}
		if cfg.NoncePosition == NoncePositionHead {
			copy(data[:len(nonce)], nonce)
			return data, 0, nil
		}
		offset := len(data) - len(nonce)
		copy(data[offset:], nonce)
		return data, offset, nil
	}

	combined := make([]byte, 0, len(data)+len(nonce))
	if cfg.NoncePosition == NoncePositionHead {
		combined = append(combined, nonce...)
		combined = append(combined, data...)
		return combined, 0, nil
	}
	combined = append(combined, data...)
	combined = append(combined, nonce...)
	return combined, len(data), nil
}

// IncrementNonce adds one to the nonce region interpreted as a little-endian
// integer with byte units, carrying toward the high byte. It reports whether
// the region wrapped back to all zeros.
func IncrementNonce(data []byte, nonceOffset int, nonceLength int) (_wrapped bool) {
	for ii := nonceOffset; ii < nonceOffset+nonceLength; ii++ {
		data[ii]++
		if data[ii] != 0 {
			return false
		}
	}
	return true
}

// ExtractNonce copies the nonce region out of data.
func ExtractNonce(data []byte, nonceOffset int, nonceLength int) []byte {
	nonce := make([]byte, nonceLength)
	copy(nonce, data[nonceOffset:nonceOffset+nonceLength])
	return nonce
}

// ChallengeHolds evaluates the predicate for a digest against a target.
func ChallengeHolds(kind ChallengeKind, digest []byte, target []byte) bool {
	switch kind {
	case ChallengeLessOrEqual:
		return LessOrEqual(digest, target)
	case ChallengeStartsWith:
		return StartsWith(digest, target)
	}
	return false
}

// LessOrEqual compares digest and target as big-endian magnitudes. Unequal
// lengths never satisfy the predicate.
func LessOrEqual(digest []byte, target []byte) bool {
	if len(digest) != len(target) {
		return false
	}
	return bytes.Compare(digest, target) <= 0
}

// StartsWith reports whether the digest begins with the target bytes.
func StartsWith(digest []byte, target []byte) bool {
	if len(digest) < len(target) {
		return false
	}
	return bytes.Equal(digest[:len(target)], target)
}
