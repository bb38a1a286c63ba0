package ecs

// Registry owns every component storage, keyed by a single entity id space.
// There is no separate entity table: an id is alive exactly while it owns at
// least one component. The registry is not safe for concurrent use; one
// simulation tick owns it exclusively.
type Registry struct {
	nextEntityID Entity

	transforms map[Entity]*TransformComponent
	physics    map[Entity]*PhysicsComponent
	colliders  map[Entity]*ColliderComponent
	meshes     map[Entity]*MeshComponent
	terrains   map[Entity]*TerrainComponent
}

func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[Entity]*TransformComponent),
		physics:    make(map[Entity]*PhysicsComponent),
		colliders:  make(map[Entity]*ColliderComponent),
		meshes:     make(map[Entity]*MeshComponent),
		terrains:   make(map[Entity]*TerrainComponent),
	}
}

// CreateEntity returns a fresh id. Ids are handed out monotonically starting
// at 0 and are never reused within a process lifetime, so destroying an
// entity does not reclaim its id.
func (r *Registry) CreateEntity() Entity {
	id := r.nextEntityID
	r.nextEntityID++
	return id
}

// DestroyEntity removes the entity from every component storage. Destroying
// an already-destroyed or never-created id is a no-op.
func (r *Registry) DestroyEntity(entity Entity) {
	delete(r.transforms, entity)
	delete(r.physics, entity)
	delete(r.colliders, entity)
	delete(r.meshes, entity)
	delete(r.terrains, entity)
}

// AddTransform inserts or overwrites the entity's transform. The value is
// copied into storage; callers mutate it afterwards through Transform.
func (r *Registry) AddTransform(entity Entity, component TransformComponent) {
	r.transforms[entity] = &component
}

func (r *Registry) AddPhysics(entity Entity, component PhysicsComponent) {
	r.physics[entity] = &component
}

func (r *Registry) AddCollider(entity Entity, component ColliderComponent) {
	r.colliders[entity] = &component
}

func (r *Registry) AddMesh(entity Entity, component MeshComponent) {
	r.meshes[entity] = &component
}

func (r *Registry) AddTerrain(entity Entity, component TerrainComponent) {
	r.terrains[entity] = &component
}

// Transform returns a mutable handle to the entity's transform, or nil if
// the entity has none. Absence is never an error; callers skip the entity.
func (r *Registry) Transform(entity Entity) *TransformComponent {
	return r.transforms[entity]
}

func (r *Registry) Physics(entity Entity) *PhysicsComponent {
	return r.physics[entity]
}

func (r *Registry) Collider(entity Entity) *ColliderComponent {
	return r.colliders[entity]
}

func (r *Registry) Mesh(entity Entity) *MeshComponent {
	return r.meshes[entity]
}

func (r *Registry) Terrain(entity Entity) *TerrainComponent {
	return r.terrains[entity]
}

// HasComponent reports whether the entity owns a component of the given kind.
func (r *Registry) HasComponent(entity Entity, kind ComponentKind) bool {
	switch kind {
	case KindTransform:
		return r.transforms[entity] != nil
	case KindPhysics:
		return r.physics[entity] != nil
	case KindCollider:
		return r.colliders[entity] != nil
	case KindMesh:
		return r.meshes[entity] != nil
	case KindTerrain:
		return r.terrains[entity] != nil
	}
	return false
}

// EntitiesWith returns every entity holding all of the listed component
// kinds. The first kind's storage is enumerated and entities lacking any of
// the remaining kinds are filtered out. Order follows map iteration of the
// first storage and is not stable; callers must not rely on it.
func (r *Registry) EntitiesWith(first ComponentKind, rest ...ComponentKind) []Entity {
	entities := r.entitiesOf(first)

	if len(rest) == 0 {
		return entities
	}

	filtered := entities[:0]
	for _, entity := range entities {
		ok := true
		for _, kind := range rest {
			if !r.HasComponent(entity, kind) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

func (r *Registry) entitiesOf(kind ComponentKind) []Entity {
	switch kind {
	case KindTransform:
		return mapKeys(r.transforms)
	case KindPhysics:
		return mapKeys(r.physics)
	case KindCollider:
		return mapKeys(r.colliders)
	case KindMesh:
		return mapKeys(r.meshes)
	case KindTerrain:
		return mapKeys(r.terrains)
	}
	return nil
}

func mapKeys[T any](storage map[Entity]*T) []Entity {
	keys := make([]Entity, 0, len(storage))
	for entity := range storage {
		keys = append(keys, entity)
	}
	return keys
}
