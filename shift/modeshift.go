package shift

import "fmt"

// ModeshiftToken is one late-binding placeholder: a gated cluster's
// group id is not known until the emit stage assigns group ids, so the
// placeholder binding records the gated cluster symbol and carries a
// token id that the token pool resolves once the gated group is
// written. Grounded on spec.md §4.4.1 and
// original_source/src/domexport.py's ModeshiftIntermediate.
type ModeshiftToken struct {
	ClusterSym string
	GroupID    int
	resolved   bool
	addresses  []*int // back-patch targets: resolved group ids get written here on Resolve
}

// TokenPool assigns and resolves mode-shift tokens. A placeholder
// serialized before its gated group is emitted records its own output
// slot in the token entry, so Resolve can back-patch it later; a
// placeholder serialized after resolution reads the id immediately.
type TokenPool struct {
	tokens []*ModeshiftToken
}

// NewTokenPool returns an empty pool.
func NewTokenPool() *TokenPool {
	return &TokenPool{}
}

// Reserve allocates a new token for clusterSym, returning its id. Called
// when normalization encounters a `<ClusterSym>&<ModeSym>` key, before
// the gated group's id is known.
func (p *TokenPool) Reserve(clusterSym string) int {
	p.tokens = append(p.tokens, &ModeshiftToken{ClusterSym: clusterSym})
	return len(p.tokens) - 1
}

// Resolve records the gated group's id for tokenID, back-patching every
// address any placeholder registered before resolution.
func (p *TokenPool) Resolve(tokenID int, groupID int) error {
	if tokenID < 0 || tokenID >= len(p.tokens) {
		return fmt.Errorf("shift: unknown mode-shift token %d", tokenID)
	}
	t := p.tokens[tokenID]
	t.GroupID = groupID
	t.resolved = true
	for _, addr := range t.addresses {
		*addr = groupID
	}
	return nil
}

// Lookup returns the token's group id and whether it has been resolved
// yet. If not yet resolved, out is registered as a back-patch address:
// Resolve will write the final group id into *out once the gated group
// is emitted.
func (p *TokenPool) Lookup(tokenID int, out *int) (groupID int, resolved bool, err error) {
	if tokenID < 0 || tokenID >= len(p.tokens) {
		return 0, false, fmt.Errorf("shift: unknown mode-shift token %d", tokenID)
	}
	t := p.tokens[tokenID]
	if t.resolved {
		*out = t.GroupID
		return t.GroupID, true, nil
	}
	t.addresses = append(t.addresses, out)
	return 0, false, nil
}
