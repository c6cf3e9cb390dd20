package shorthand

import (
	"fmt"
	"strconv"

	"github.com/PhaethonH/scbind/normalize"
)

// LoadYAML reads a source tree into a Maker, using the --format=shorthand
// schema: a top-level "action" sequence of {name, layer[], shiftmap?}
// entries, each layer an explicit {name, parent, entries{}} object
// (unlike normalize's cluster-key-addressed layer maps, this format
// names its srcspecs directly, the way CfgMaker's own declarative
// source does). aliases is an optional top-level map of alias name to
// expansion text.
func LoadYAML(root *normalize.Node) (*Maker, error) {
	name, _ := root.GetString("name")
	m := NewMaker(name)

	if aliasNode, ok := root.Get("aliases"); ok && aliasNode.Kind == normalize.KindMap {
		for _, k := range aliasNode.Keys {
			if v, ok := aliasNode.GetString(k); ok {
				m.Aliases[k] = v
			}
		}
	}

	actionsNode, ok := root.Get("action")
	if !ok || actionsNode.Kind != normalize.KindSeq {
		return m, nil
	}
	for _, actionNode := range actionsNode.Seq {
		if actionNode.Kind != normalize.KindMap {
			continue
		}
		actionName, _ := actionNode.GetString("name")
		action := NewCfgAction(actionName)

		if layersNode, ok := actionNode.Get("layer"); ok && layersNode.Kind == normalize.KindSeq {
			for _, layerNode := range layersNode.Seq {
				if layerNode.Kind != normalize.KindMap {
					continue
				}
				layerName, _ := layerNode.GetString("name")
				parent, _ := layerNode.GetString("parent")
				layer := action.AddLayer(layerName, parent)
				if entriesNode, ok := layerNode.Get("entries"); ok && entriesNode.Kind == normalize.KindMap {
					for _, srcspec := range entriesNode.Keys {
						if expr, ok := entriesNode.GetString(srcspec); ok {
							layer.Bind(srcspec, expr)
						}
					}
				}
			}
		}

		if shiftmapNode, ok := actionNode.Get("shiftmap"); ok && shiftmapNode.Kind == normalize.KindMap {
			sm, err := loadShiftmap(shiftmapNode)
			if err != nil {
				return nil, fmt.Errorf("shorthand: action %q: shiftmap: %w", actionName, err)
			}
			action.Shiftmap = sm
		}

		m.AddAction(action)
	}
	return m, nil
}

func loadShiftmap(n *normalize.Node) (*Shiftmap, error) {
	sm := &Shiftmap{
		Overlays:      map[int][]string{},
		Hermits:       map[int]string{},
		LayerClusters: map[string][]string{},
		ClusterShape:  map[string]string{},
	}
	sm.SanitySym, _ = n.GetString("sanity")

	if shiftersNode, ok := n.Get("shifters"); ok && shiftersNode.Kind == normalize.KindSeq {
		for _, sNode := range shiftersNode.Seq {
			if sNode.Kind != normalize.KindMap {
				continue
			}
			decl := ShifterDecl{}
			decl.Sym, _ = sNode.GetString("sym")
			decl.Style, _ = sNode.GetString("style")
			decl.Cluster, _ = sNode.GetString("cluster")
			decl.Pole, _ = sNode.GetString("pole")
			if bitmaskStr, ok := sNode.GetString("bitmask"); ok {
				n, err := strconv.Atoi(bitmaskStr)
				if err != nil {
					return nil, fmt.Errorf("shifter %q: bad bitmask %q: %w", decl.Sym, bitmaskStr, err)
				}
				decl.Bitmask = n
			}
			sm.Shifters = append(sm.Shifters, decl)
		}
	}

	if overlaysNode, ok := n.Get("overlays"); ok && overlaysNode.Kind == normalize.KindMap {
		for _, levelStr := range overlaysNode.Keys {
			level, err := strconv.Atoi(levelStr)
			if err != nil {
				return nil, fmt.Errorf("overlays: bad level %q: %w", levelStr, err)
			}
			layersNode, _ := overlaysNode.Get(levelStr)
			if layersNode == nil || layersNode.Kind != normalize.KindSeq {
				continue
			}
			var layers []string
			for _, ln := range layersNode.Seq {
				if ln.Kind == normalize.KindScalar {
					layers = append(layers, ln.Scalar)
				}
			}
			sm.Overlays[level] = layers
		}
	}

	if hermitsNode, ok := n.Get("hermits"); ok && hermitsNode.Kind == normalize.KindMap {
		for _, levelStr := range hermitsNode.Keys {
			level, err := strconv.Atoi(levelStr)
			if err != nil {
				return nil, fmt.Errorf("hermits: bad level %q: %w", levelStr, err)
			}
			if expr, ok := hermitsNode.GetString(levelStr); ok {
				sm.Hermits[level] = expr
			}
		}
	}

	if lcNode, ok := n.Get("layer_clusters"); ok && lcNode.Kind == normalize.KindMap {
		for _, layerName := range lcNode.Keys {
			clustersNode, _ := lcNode.Get(layerName)
			if clustersNode == nil || clustersNode.Kind != normalize.KindSeq {
				continue
			}
			var clusters []string
			for _, cn := range clustersNode.Seq {
				if cn.Kind == normalize.KindScalar {
					clusters = append(clusters, cn.Scalar)
				}
			}
			sm.LayerClusters[layerName] = clusters
		}
	}

	if csNode, ok := n.Get("cluster_shape"); ok && csNode.Kind == normalize.KindMap {
		for _, cluster := range csNode.Keys {
			if shape, ok := csNode.GetString(cluster); ok {
				sm.ClusterShape[cluster] = shape
			}
		}
	}

	return sm, nil
}
