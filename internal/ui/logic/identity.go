package logic

import (
	"fmt"
	"hash/fnv"
)

// OptionID derives the stable active-descendant identifier for an option
// value. The hash covers the value, not its position, so the id survives
// list reordering and keyboard selection never jumps to the wrong item
// mid-navigation.
func OptionID(value string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(value))
	return fmt.Sprintf("option-%08x", h.Sum32())
}
