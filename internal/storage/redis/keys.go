package redis

import (
	"fmt"

	"github.com/gridhunt/gridhunt/internal/model"
)

// Key prefix for all solver data
const keyPrefix = "gridhunt"

// dictionaryKey returns the Redis key for the cached word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// solveKey returns the Redis key for a SolveRecord
func solveKey(id model.SolveID) string {
	return fmt.Sprintf("%s:solve:%s", keyPrefix, id)
}

// solveIndexKey returns the Redis key for the SET of known solve IDs
func solveIndexKey() string {
	return fmt.Sprintf("%s:idx:solves", keyPrefix)
}
