package particles

// Vertex is the contract a particle record must satisfy to be stored in a
// System. All other attributes are opaque here and only matter to the shader.
// Times are in the caller's clock unit.
type Vertex interface {
	GetSpawnTime() float32
	GetLifeDuration() float32
}

// Expiry is the time at which v stops being visible.
func Expiry[V Vertex](v V) float32 {
	return v.GetSpawnTime() + v.GetLifeDuration()
}
