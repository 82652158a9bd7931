package cvjson

import (
	"math"

	"github.com/jonathan/cv-tracker/internal/types"
)

// DefaultTechnicalRatio is the share of skills SixtyForty puts in the technical bucket
const DefaultTechnicalRatio = 0.6

// BucketStrategy decides how a flat skill list is stored across the
// technical/marketing/soft buckets of the canonical schema
type BucketStrategy interface {
	Name() string
	Split(skills []string) types.CanonicalSkills
}

// Buckets records how many skills each bucket held
type Buckets struct {
	Technical int `json:"technical"`
	Marketing int `json:"marketing"`
	Soft      int `json:"soft"`
}

// Total returns the number of skills across all buckets
func (b Buckets) Total() int {
	return b.Technical + b.Marketing + b.Soft
}

// BucketsOf returns the bucket sizes of a canonical skills block
func BucketsOf(s types.CanonicalSkills) Buckets {
	return Buckets{Technical: len(s.Technical), Marketing: len(s.Marketing), Soft: len(s.Soft)}
}

// SixtyForty puts the first ⌈Ratio·n⌉ skills in technical and the rest in
// marketing; soft stays empty. It is a lossy heuristic: bucket provenance is
// not kept by the editor shape, so original bucket membership is not restored.
type SixtyForty struct {
	// Ratio overrides DefaultTechnicalRatio when in (0, 1]
	Ratio float64
}

// Name implements BucketStrategy
func (SixtyForty) Name() string { return "sixty-forty" }

// Split implements BucketStrategy
func (s SixtyForty) Split(skills []string) types.CanonicalSkills {
	ratio := s.Ratio
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultTechnicalRatio
	}
	cut := int(math.Ceil(ratio*float64(len(skills)) - 1e-9))
	if cut > len(skills) {
		cut = len(skills)
	}
	return splitAt(skills, Buckets{Technical: cut, Marketing: len(skills) - cut})
}

// BoundaryStrategy reuses the bucket sizes recorded when the record was
// parsed. When the skill count changed since, it defers to Fallback.
type BoundaryStrategy struct {
	Boundary Buckets
	Fallback BucketStrategy
}

// Name implements BucketStrategy
func (BoundaryStrategy) Name() string { return "boundary" }

// Split implements BucketStrategy
func (b BoundaryStrategy) Split(skills []string) types.CanonicalSkills {
	if b.Boundary.Total() == len(skills) {
		return splitAt(skills, b.Boundary)
	}
	fallback := b.Fallback
	if fallback == nil {
		fallback = SixtyForty{}
	}
	return fallback.Split(skills)
}

func splitAt(skills []string, b Buckets) types.CanonicalSkills {
	t := b.Technical
	m := t + b.Marketing
	return types.CanonicalSkills{
		Technical: append([]string{}, skills[:t]...),
		Marketing: append([]string{}, skills[t:m]...),
		Soft:      append([]string{}, skills[m:]...),
	}
}
