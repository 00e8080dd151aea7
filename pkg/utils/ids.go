package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID produces a prefixed operational identifier from the current
// timestamp and a random suffix, e.g. "GS-1717430400000-0042".
func GenerateID(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "-") {
		prefix += "-"
	}
	return fmt.Sprintf("%s%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}

// GenerateBarcode produces a boarding-pass barcode. Uniqueness rides on the
// millisecond timestamp plus a UUID fragment; collisions are negligible.
func GenerateBarcode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BP%d%s", time.Now().UnixMilli(), suffix)
}

// GenerateBaggageTag produces a baggage tag identifier.
func GenerateBaggageTag() string {
	return fmt.Sprintf("BT%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
