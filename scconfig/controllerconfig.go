package scconfig

import "github.com/PhaethonH/scbind/vdf"

// ControllerConfig is the toplevel object a Steam controller config file
// (the one passed to --input/--output) represents: one or more Mapping
// revisions, grounded on ControllerConfig/ControllerConfigFactory.
type ControllerConfig struct {
	Mappings []*Mapping
}

// NewControllerConfig returns an empty ControllerConfig.
func NewControllerConfig() *ControllerConfig {
	return &ControllerConfig{}
}

// AddMapping appends a Mapping revision.
func (c *ControllerConfig) AddMapping(m *Mapping) {
	c.Mappings = append(c.Mappings, m)
}

// EncodeKV renders every mapping under a repeated "controller_mappings"
// key, matching ControllerConfig.encode_kv.
func (c *ControllerConfig) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	for _, m := range c.Mappings {
		kv.Set("controller_mappings", m.EncodeKV())
	}
	return kv
}
