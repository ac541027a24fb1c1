package ens

import (
	"fmt"
)

// go-ens reports missing names with plain errors
var absentErrs = map[string]bool{
	"unregistered name": true,
	"no resolver":       true,
	"not a resolver":    true,
}

// isAbsent tells a name without an address apart from a failing backend
func isAbsent(err error) bool {
	return err != nil && absentErrs[fmt.Sprint(err)]
}
