package analysis

import "github.com/jiwoohan/record-analyzer/internal/rubric"

// Bucket is a named performance tier derived from a score. The thresholds
// are part of the data contract; the hex palette they select is owned by the
// export layer.
type Bucket string

const (
	BucketOutstanding Bucket = "outstanding"
	BucketExcellent   Bucket = "excellent"
	BucketGood        Bucket = "good"
	BucketFair        Bucket = "fair"
	BucketWeak        Bucket = "weak"
)

// BucketFor maps a score to its tier. 7-point items use all five buckets;
// 5-point items only reach the top three (a score of 3 is already "good").
func BucketFor(cat rubric.Category, score int) Bucket {
	if cat.MaxScore() == 7 {
		switch {
		case score >= 7:
			return BucketOutstanding
		case score >= 6:
			return BucketExcellent
		case score >= 5:
			return BucketGood
		case score >= 4:
			return BucketFair
		default:
			return BucketWeak
		}
	}
	switch {
	case score >= 5:
		return BucketOutstanding
	case score >= 4:
		return BucketExcellent
	default:
		return BucketGood
	}
}
