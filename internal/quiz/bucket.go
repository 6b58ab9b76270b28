package quiz

import "sort"

// Bucket is one of the three semantic question-category groups every
// complete QuestionSet must cover.
type Bucket string

const (
	BucketFact    Bucket = "事実"
	BucketMessage Bucket = "メインポイント/暗示されたメッセージ"
	BucketGrammar Bucket = "文法や表現"
)

// bucketSynonyms maps raw category labels to their bucket. Upstream
// prompts are inconsistent about spelling, so each bucket accepts every
// label variant the generators have been observed to emit. A bare "表現"
// counts for the grammar bucket even without "文法". The message bucket
// accepts exactly the two spellings メインポイント and 暗示されたメッセージ;
// the compound display label is not itself a valid category.
var bucketSynonyms = map[string]Bucket{
	"事実":          BucketFact,
	"メインポイント":     BucketMessage,
	"暗示されたメッセージ":  BucketMessage,
	"文法":          BucketGrammar,
	"表現":          BucketGrammar,
	"文法や表現":       BucketGrammar,
}

// AllBuckets returns the three required buckets in canonical order.
func AllBuckets() []Bucket {
	return []Bucket{BucketFact, BucketMessage, BucketGrammar}
}

// BucketOf resolves a raw category label to its bucket.
// Returns false for labels outside the synonym table.
func BucketOf(category string) (Bucket, bool) {
	b, ok := bucketSynonyms[category]
	return b, ok
}

// Coverage reports which buckets a question set covers and the sorted set
// of distinct raw category labels observed.
func (s *QuestionSet) Coverage() (covered map[Bucket]bool, categories []string) {
	covered = make(map[Bucket]bool, 3)
	seen := make(map[string]bool)

	if s != nil {
		for _, q := range s.Questions {
			if !seen[q.Category] {
				seen[q.Category] = true
				categories = append(categories, q.Category)
			}
			if b, ok := BucketOf(q.Category); ok {
				covered[b] = true
			}
		}
	}

	sort.Strings(categories)
	return covered, categories
}
