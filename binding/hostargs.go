package binding

import "github.com/mattn/go-shellwords"

// SplitHostArgs tokenizes an argument list using shell-word rules, so a
// quoted argument may carry embedded spaces, matching how the teacher
// (junegunn/fzf, src/options.go) tokenizes its own command-line style
// arguments for `--preview`/`--bind`. Falls back to a plain comma split
// if shellwords fails or finds nothing to separate. The brace-directive
// parser (evgenFromBrace) does not call it: it splits brace contents on
// commas only.
func SplitHostArgs(s string) []string {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false
	words, err := parser.Parse(s)
	if err != nil || len(words) == 0 {
		return splitComma(s)
	}
	return words
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
