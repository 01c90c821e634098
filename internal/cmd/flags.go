package cmd

import (
	"github.com/spf13/pflag"
)

// flagAliases maps accepted spellings onto the canonical flag names
var flagAliases = map[string]string{
	"colors": "colours",
	"search": "find",
}

// normalizeFlagName lets --colors and --search stand in for their canonical
// names. Changed() and config merging only ever see the canonical form.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}
