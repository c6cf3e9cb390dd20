package binding

import (
	"fmt"
	"strings"
)

// ErrUnresolvedAlias is returned when a `$name` substitution has no entry
// in the alias table.
var ErrUnresolvedAlias = fmt.Errorf("binding: unresolved alias")

// ErrAliasCycle is returned when alias substitution does not reach a
// fixpoint within a bounded number of passes, matching spec.md §9's
// explicit instruction to detect cycles rather than loop forever.
var ErrAliasCycle = fmt.Errorf("binding: alias expansion cycle")

const maxAliasPasses = 64

// ExpandAliases substitutes `$name` and `${name}` references against
// aliases, running to fixpoint. If the outermost alias reference in s was
// unbraced (`$name`, not `${name}`), its name is appended as an
// auto-label (`#name`) unless s already carries an explicit label.
func ExpandAliases(s string, aliases map[string]string) (string, error) {
	autoLabel := ""
	cur := s
	for pass := 0; pass < maxAliasPasses; pass++ {
		next, firstName, braced, found, err := substituteOnce(cur, aliases)
		if err != nil {
			return "", err
		}
		if pass == 0 && found && !braced {
			autoLabel = firstName
		}
		if next == cur {
			if autoLabel != "" && !strings.Contains(cur, "#") {
				return cur + "#" + autoLabel, nil
			}
			return cur, nil
		}
		cur = next
	}
	return "", ErrAliasCycle
}

func substituteOnce(s string, aliases map[string]string) (out string, firstName string, braced bool, found bool, err error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '{' {
			j := strings.IndexByte(s[i+2:], '}')
			if j < 0 {
				b.WriteByte(s[i])
				i++
				continue
			}
			name := s[i+2 : i+2+j]
			val, ok := aliases[name]
			if !ok {
				return "", "", false, false, fmt.Errorf("%w: %q", ErrUnresolvedAlias, name)
			}
			if !found {
				found = true
				firstName = name
				braced = true
			}
			b.WriteString(val)
			i = i + 2 + j + 1
			continue
		}
		j := i + 1
		for j < len(s) && isAliasNameByte(s[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		name := s[i+1 : j]
		val, ok := aliases[name]
		if !ok {
			return "", "", false, false, fmt.Errorf("%w: %q", ErrUnresolvedAlias, name)
		}
		if !found {
			found = true
			firstName = name
			braced = false
		}
		b.WriteString(val)
		i = j
	}
	return b.String(), firstName, braced, found, nil
}

func isAliasNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
