package engine

import "github.com/lixenwraith/snake/core"

// AcceptDirection reports whether requested may become the pending direction
// heading is the direction of the last applied move, so several turns queued
// inside one tick can never add up to a reversal into the neck
func AcceptDirection(heading, requested core.Direction) bool {
	if !requested.Valid() {
		return false
	}
	return requested != heading.Opposite()
}
