package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID derives a stable identifier for a document missing one.
func DocumentUUID(title string) uuid.UUID {
	return UUID("go-richtext:document:" + strings.TrimSpace(title))
}

// NodeUUID derives a stable identifier for a block node from its document and
// its position path within the tree (e.g. [2 0 1] for the second child of the
// first child of root sibling 2).
func NodeUUID(documentID uuid.UUID, path []int) uuid.UUID {
	segments := make([]string, 0, len(path))
	for _, index := range path {
		segments = append(segments, strconv.Itoa(index))
	}
	return UUID("go-richtext:node:" + documentID.String() + ":" + strings.Join(segments, "."))
}
