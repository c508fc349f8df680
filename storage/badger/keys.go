package badger

import (
	"fmt"

	"github.com/poiesic/resumatch/core"
)

// Key prefixes for different data types
const (
	candidateRecordPrefix = "canrec"
	blobPrefix            = "blob"
	manifestKey           = "idxmanifest"
)

// makeCandidateKey generates a key for a candidate record by ID.
func makeCandidateKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", candidateRecordPrefix, id))
}

// makeBlobKey generates a key for a stored document payload.
func makeBlobKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%s", blobPrefix, key))
}

// makeManifestKey generates the key for the index manifest.
func makeManifestKey() []byte {
	return []byte(manifestKey)
}
