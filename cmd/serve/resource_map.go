package serve

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// resourceMap assigns a random GUID to every track file, keeping registration order.
type resourceMap struct {
	bySrc map[string]uuid.UUID
	byDst map[uuid.UUID]string
	order []uuid.UUID
}

func newResourceMap() *resourceMap {
	return &resourceMap{
		bySrc: make(map[string]uuid.UUID),
		byDst: make(map[uuid.UUID]string),
	}
}

func (r *resourceMap) IDFromPath(srcPath string) (uuid.UUID, error) {
	srcPath, err := filepath.Abs(srcPath)
	if err != nil {
		return uuid.Nil, fmt.Errorf("absolute path: %w", err)
	}

	if guid, ok := r.bySrc[srcPath]; ok {
		return guid, nil
	}

	guid, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate track id: %w", err)
	}

	r.bySrc[srcPath] = guid
	r.byDst[guid] = srcPath
	r.order = append(r.order, guid)

	return guid, nil
}

func (r *resourceMap) PathFromID(guid uuid.UUID) (string, bool) {
	if src, ok := r.byDst[guid]; ok {
		return src, true
	}

	return "", false
}

// IDs returns all GUIDs in registration order.
func (r *resourceMap) IDs() []uuid.UUID {
	return r.order
}
