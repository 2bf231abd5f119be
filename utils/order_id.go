package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var mu sync.Mutex
var seededRand *rand.Rand

func init() {
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateOrderID returns a reference id for ledger entries and investments,
// unique enough for a uniqueIndex column: nano timestamp + random suffix +
// the owning user id.
func GenerateOrderID(userID uint) string {
	mu.Lock()
	defer mu.Unlock()

	nanoPart := time.Now().UnixNano() % 1000000
	randPart := seededRand.Intn(900) + 100

	return fmt.Sprintf("IVM-%06d%03d%d", nanoPart, randPart, userID)
}
