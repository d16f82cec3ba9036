package s3io

import (
	"fmt"
	"time"
)

// Common S3 constants and key helpers.
const (
	ContentTypeCSV = "text/csv"

	// KeyTimeLayout is the wall-clock format embedded in archive keys.
	// Second resolution: two uploads within the same second share a key and
	// the later one overwrites.
	KeyTimeLayout = "2006-01-02_15-04-05"
)

// BuildKey constructs the archive key for an upload at time t.
func BuildKey(t time.Time) string {
	return fmt.Sprintf("user_data_%s.csv", t.Format(KeyTimeLayout))
}
