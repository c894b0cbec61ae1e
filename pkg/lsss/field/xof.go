package field

import (
	"io"

	"golang.org/x/crypto/sha3"
)

const seededReaderDomain = "lsss-go/seeded-reader/v1"

// NewSeededReader returns an endless deterministic byte stream derived from
// seed with SHAKE256. Equal seeds give equal streams, which makes Random
// reproducible. It must never be used to split real secrets.
func NewSeededReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(seededReaderDomain))
	_, _ = h.Write(seed)
	return h
}
