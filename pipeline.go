package dawg

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Stats reports size and per-stage timing information for a completed build.
type Stats struct {
	WordCount   int
	NodeCount   int
	ListCount   int
	Mode        PackMode
	EncodedSize int

	TrieBuild    time.Duration
	Minimize     time.Duration
	Canonicalize time.Duration
	Linearize    time.Duration
	Verify       time.Duration
	Encode       time.Duration
}

// Logger is the package's structured logger. It defaults to discarding
// everything; cmd/dawgc installs a console writer on it at startup.
var Logger zerolog.Logger = zerolog.Nop()

// Build wires the full compiler together over words, which must already
// satisfy ValidateWords (sorted, deduplicated, A-Z only): trie construction,
// minimization, child-list canonicalization, overlap compression (folded
// into linearization), verification, and encoding, packing the resulting
// array with mode. It returns the linearized array alongside the encoded
// bytes so callers can inspect either.
func Build(words []string, mode PackMode) (NodeArray, []byte, Stats, error) {
	var stats Stats
	stats.WordCount = len(words)

	if err := ValidateWords(words); err != nil {
		return nil, nil, stats, err
	}

	t0 := time.Now()
	root, err := BuildTrie(words)
	stats.TrieBuild = time.Since(t0)
	if err != nil {
		return nil, nil, stats, errors.Wrap(err, "build trie")
	}
	Logger.Debug().Dur("elapsed", stats.TrieBuild).Int("words", len(words)).Msg("trie built")

	t0 = time.Now()
	dag := minimize(root)
	stats.Minimize = time.Since(t0)
	Logger.Debug().Dur("elapsed", stats.Minimize).Msg("dag minimized")

	t0 = time.Now()
	rootList, lists := canonicalizeChildLists(dag)
	stats.Canonicalize = time.Since(t0)
	stats.ListCount = len(lists)
	Logger.Debug().Dur("elapsed", stats.Canonicalize).Int("lists", len(lists)).Msg("child lists canonicalized")

	t0 = time.Now()
	arr := linearize(rootList, lists)
	stats.Linearize = time.Since(t0)
	stats.NodeCount = len(arr)
	Logger.Debug().Dur("elapsed", stats.Linearize).Int("nodes", len(arr)).Msg("array linearized")

	if !modeFits(mode, len(arr)) {
		return arr, nil, stats, newError(TooManyNodes, fmt.Sprintf("mode %d cannot hold %d nodes", mode, len(arr)))
	}

	t0 = time.Now()
	verr := Verify(arr, words)
	stats.Verify = time.Since(t0)
	if verr != nil {
		Logger.Error().Dur("elapsed", stats.Verify).Err(verr).Msg("array failed verification")
		return arr, nil, stats, verr
	}
	Logger.Debug().Dur("elapsed", stats.Verify).Msg("array verified")

	t0 = time.Now()
	encoded, err := Encode(arr, mode)
	stats.Encode = time.Since(t0)
	if err != nil {
		return arr, nil, stats, err
	}
	stats.Mode = mode
	stats.EncodedSize = len(encoded)
	Logger.Debug().Dur("elapsed", stats.Encode).Int("bytes", len(encoded)).Msg("array encoded")

	return arr, encoded, stats, nil
}

func modeFits(mode PackMode, n int) bool {
	for _, m := range AvailableModes(n) {
		if m == mode {
			return true
		}
	}
	return false
}
