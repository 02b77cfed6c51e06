package physics

// MaxLayers is the number of distinct collision layers.
const MaxLayers = 32

// AllLayers is the default mask: collide with every layer.
const AllLayers uint32 = 0xFFFFFFFF

// CollisionLayers assigns a body to one layer and lists the layers it accepts.
// Layers outside [0, MaxLayers) never match any mask.
type CollisionLayers struct {
	layer int
	mask  uint32
}

// NewCollisionLayers returns layer 0 with every layer accepted.
func NewCollisionLayers() CollisionLayers {
	return CollisionLayers{mask: AllLayers}
}

func (c *CollisionLayers) SetLayer(layer int) { c.layer = layer }
func (c CollisionLayers) Layer() int          { return c.layer }

func (c *CollisionLayers) SetMask(mask uint32) { c.mask = mask }
func (c CollisionLayers) Mask() uint32         { return c.mask }

// EnableLayer adds layer to the mask.
func (c *CollisionLayers) EnableLayer(layer int) {
	c.mask |= layerBit(layer)
}

// DisableLayer removes layer from the mask.
func (c *CollisionLayers) DisableLayer(layer int) {
	c.mask &^= layerBit(layer)
}

// CanCollideWith reports whether other's layer bit is set in this mask.
// The test is directional: only the receiver's mask is consulted.
func (c CollisionLayers) CanCollideWith(other CollisionLayers) bool {
	return c.mask&layerBit(other.layer) != 0
}

func layerBit(layer int) uint32 {
	if layer < 0 || layer >= MaxLayers {
		return 0
	}
	return 1 << uint(layer)
}
