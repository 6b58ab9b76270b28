package quiz

import "testing"

func TestBucketOf(t *testing.T) {
	cases := []struct {
		category string
		bucket   Bucket
		ok       bool
	}{
		{"事実", BucketFact, true},
		{"メインポイント", BucketMessage, true},
		{"暗示されたメッセージ", BucketMessage, true},
		{"メインポイント/暗示されたメッセージ", "", false},
		{"文法", BucketGrammar, true},
		{"表現", BucketGrammar, true},
		{"文法や表現", BucketGrammar, true},
		{"語彙", "", false},
		{"", "", false},
		{"facts", "", false},
	}
	for _, c := range cases {
		b, ok := BucketOf(c.category)
		if ok != c.ok || (ok && b != c.bucket) {
			t.Errorf("BucketOf(%q) = (%q, %t), want (%q, %t)", c.category, b, ok, c.bucket, c.ok)
		}
	}
}

func setWithCategories(categories ...string) *QuestionSet {
	set := &QuestionSet{}
	for _, c := range categories {
		set.Questions = append(set.Questions, Question{
			Category: c,
			Text:     "q",
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "A",
		})
	}
	return set
}

func TestCoverageFullViaSynonyms(t *testing.T) {
	// Two different spellings of a full set both cover all buckets.
	for _, categories := range [][]string{
		{"事実", "暗示されたメッセージ", "文法や表現"},
		{"事実", "メインポイント", "文法"},
	} {
		covered, _ := setWithCategories(categories...).Coverage()
		for _, b := range AllBuckets() {
			if !covered[b] {
				t.Errorf("%v: bucket %q not covered", categories, b)
			}
		}
	}
}

func TestCoverageRejectsCompoundMessageLabel(t *testing.T) {
	// The message bucket's display name joins its two accepted spellings,
	// but the joined form is not itself an accepted category.
	covered, _ := setWithCategories("事実", "メインポイント/暗示されたメッセージ", "文法や表現").Coverage()
	if covered[BucketMessage] {
		t.Error("compound label should not cover the message bucket")
	}
	if !covered[BucketFact] || !covered[BucketGrammar] {
		t.Error("fact and grammar buckets should still be covered")
	}
}

func TestCoveragePartial(t *testing.T) {
	covered, categories := setWithCategories("事実", "事実").Coverage()

	if !covered[BucketFact] {
		t.Error("fact bucket should be covered")
	}
	if covered[BucketMessage] || covered[BucketGrammar] {
		t.Error("message and grammar buckets should not be covered")
	}
	if len(categories) != 1 || categories[0] != "事実" {
		t.Errorf("observed categories should be deduplicated: %v", categories)
	}
}

func TestCoverageNilSet(t *testing.T) {
	var set *QuestionSet
	covered, categories := set.Coverage()
	if len(covered) != 0 || len(categories) != 0 {
		t.Error("nil set covers nothing")
	}
}
