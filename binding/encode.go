package binding

import "github.com/PhaethonH/scbind/vdf"

// EncodeKV renders this activator as a VDF block: a "bindings" sub-block
// with one "binding" leaf per Binding, and (if any settings were written)
// a "settings" sub-block, mirroring ActivatorBase.encode_kv.
func (a *Activator) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	bindings := vdf.NewOMM()
	for _, b := range a.Bindings {
		bindings.Set("binding", b.String())
	}
	kv.Set("bindings", bindings)
	if a.Settings.Len() > 0 {
		settings := vdf.NewOMM()
		for _, key := range a.Settings.Keys() {
			if s, ok := a.Settings.EncodeString(key); ok {
				settings.Set(key, s)
			}
		}
		kv.Set("settings", settings)
	}
	return kv
}
