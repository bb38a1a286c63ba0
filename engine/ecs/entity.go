package ecs

// Entity is an opaque identifier for a bundle of components. It carries no
// data of its own; all state lives in the registry's component storages.
type Entity uint32

// InvalidEntity is returned by lookups that found nothing. Entity ids start
// at 0, so the sentinel lives at the top of the range.
const InvalidEntity Entity = ^Entity(0)

// ComponentKind enumerates the closed set of component types the registry
// knows about. The set is fixed per engine build; systems switch over it
// instead of going through reflection.
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota
	KindPhysics
	KindCollider
	KindMesh
	KindTerrain
)

func (k ComponentKind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindPhysics:
		return "physics"
	case KindCollider:
		return "collider"
	case KindMesh:
		return "mesh"
	case KindTerrain:
		return "terrain"
	}
	return "unknown"
}
