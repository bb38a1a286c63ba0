package core

import (
	"fmt"
	"sync"
)

// Free-list id allocator used by the render backend to hand out slot ids
// for uploaded resources. Released ids are reused.
var (
	ownersMu sync.Mutex
	owners   []interface{}
)

func IdentifierAcquireNewID(owner interface{}) uint32 {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	for i := range owners {
		if owners[i] == nil {
			owners[i] = owner
			return uint32(i)
		}
	}
	owners = append(owners, owner)
	return uint32(len(owners) - 1)
}

func IdentifierReleaseID(id uint32) error {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	if int(id) >= len(owners) {
		return fmt.Errorf("identifier id '%d' out of range (max=%d), nothing was done", id, len(owners))
	}
	owners[id] = nil
	return nil
}
