// Package linkargs rewrites the link line clang builds for wasm32 into one
// wasm-ld accepts.
package linkargs

// Filter returns the tokens of args that survive rules, in their original
// order, followed by rules.Append. args is not modified.
//
// A token listed in DropWithNext also discards the token after it. The
// paired token is not inspected.
func Filter(rules *Rules, args []string) []string {
	out := make([]string, 0, len(args)+len(rules.Append))
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if drop, withNext := rules.drops(arg); drop {
			skipNext = withNext
			continue
		}
		out = append(out, arg)
	}
	return append(out, rules.Append...)
}
