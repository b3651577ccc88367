package linkargs

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed rules.toml
var defaultRulesTOML []byte

// Rules is the declarative drop table applied by Filter. Obtain one from
// ParseRules or DefaultRules; a bare literal has no exact-match index.
type Rules struct {
	DropExact    []string `toml:"drop_exact"`
	DropPrefix   []string `toml:"drop_prefix"`
	DropWithNext []string `toml:"drop_with_next"`
	Append       []string `toml:"append"`

	exact    map[string]struct{}
	withNext map[string]struct{}
}

var (
	defaultOnce  sync.Once
	defaultRules *Rules
)

// DefaultRules returns the compiled-in table for wasm-ld.
// It panics if the embedded table is malformed, which is a build bug.
func DefaultRules() *Rules {
	defaultOnce.Do(func() {
		r, err := ParseRules(defaultRulesTOML)
		if err != nil {
			panic(fmt.Sprintf("embedded link rules: %v", err))
		}
		defaultRules = r
	})
	return defaultRules
}

// ParseRules decodes a rule table from TOML.
func ParseRules(data []byte) (*Rules, error) {
	var r Rules
	meta, err := toml.Decode(string(data), &r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := r.index(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Rules) index() error {
	r.exact = make(map[string]struct{}, len(r.DropExact))
	for _, tok := range r.DropExact {
		r.exact[tok] = struct{}{}
	}
	for _, p := range r.DropPrefix {
		if p == "" {
			return fmt.Errorf("drop_prefix: empty prefix would drop every token")
		}
	}
	r.withNext = make(map[string]struct{}, len(r.DropWithNext))
	for _, tok := range r.DropWithNext {
		if _, ok := r.exact[tok]; !ok {
			return fmt.Errorf("drop_with_next: %q is not listed in drop_exact", tok)
		}
		r.withNext[tok] = struct{}{}
	}
	return nil
}

// drops reports whether tok is discarded and whether it also takes the
// following token with it.
func (r *Rules) drops(tok string) (drop, skipNext bool) {
	if _, ok := r.exact[tok]; ok {
		_, skipNext = r.withNext[tok]
		return true, skipNext
	}
	for _, p := range r.DropPrefix {
		if strings.HasPrefix(tok, p) {
			return true, false
		}
	}
	return false, false
}
