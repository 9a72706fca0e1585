// Package gaps scores assessment sub-scores into ranked learning-gap
// findings. Everything here is deterministic and synchronous; the package
// never talks to the generative service.
package gaps

import "sort"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type InterventionLevel string

const (
	InterventionBasic        InterventionLevel = "basic"
	InterventionIntermediate InterventionLevel = "intermediate"
	InterventionAdvanced     InterventionLevel = "advanced"
)

// Tracked skill keys. DetectLearningGaps evaluates them in this order, which
// makes tie-breaking deterministic.
const (
	SkillLiteracy       = "literacy"
	SkillPhonetics      = "phonetics"
	SkillComprehension  = "comprehension"
	SkillNumeracy       = "numeracy"
	SkillArithmetic     = "arithmetic"
	SkillProblemSolving = "problemSolving"
)

// highSeverityFloor splits high from medium severity. A finding is high only
// when its sub-score sits below this floor or at least relativeMargin points
// under the class average.
const (
	highSeverityFloor = 40
	relativeMargin    = 10
)

// GapFinding is produced fresh on every scoring call and never mutated
// afterwards.
type GapFinding struct {
	GapID             string            `json:"gapId"`
	Area              string            `json:"area"`
	Severity          Severity          `json:"severity"`
	Confidence        float64           `json:"confidence"`
	AffectedSkills    []string          `json:"affectedSkills"`
	Recommendation    string            `json:"recommendation"`
	InterventionLevel InterventionLevel `json:"interventionLevel"`
}

// skillRule drives one tracked skill. Relative rules trigger against the
// class average minus relativeMargin; absolute rules against a fixed floor.
type skillRule struct {
	key            string
	gapID          string
	area           string
	relative       bool
	floor          int
	confidence     float64
	affectedSkills []string
	recommendation string
}

var skillRules = []skillRule{
	{
		key:        SkillLiteracy,
		gapID:      "gap-literacy-1",
		area:       "Letter Recognition",
		relative:   true,
		confidence: 0.85,
		affectedSkills: []string{
			"Phonetics", "Reading Fluency", "Spelling",
		},
		recommendation: "Daily 15-minute phonetic drills with visual aids. Practice sound-letter association through interactive games.",
	},
	{
		key:        SkillPhonetics,
		gapID:      "gap-literacy-2",
		area:       "Phonetics & Sound Recognition",
		floor:      50,
		confidence: 0.9,
		affectedSkills: []string{
			"Word Formation", "Reading Comprehension", "Pronunciation",
		},
		recommendation: "Focus on fundamental sound-letter mappings. Use audio reinforcement and repeat sounds daily.",
	},
	{
		key:        SkillComprehension,
		gapID:      "gap-literacy-3",
		area:       "Reading Comprehension",
		floor:      45,
		confidence: 0.8,
		affectedSkills: []string{
			"Vocabulary", "Sentence Understanding", "Context Inference",
		},
		recommendation: "Start with simple stories. Use picture books and guided reading with teacher support.",
	},
	{
		key:        SkillNumeracy,
		gapID:      "gap-numeracy-1",
		area:       "Number Sense & Counting",
		relative:   true,
		confidence: 0.85,
		affectedSkills: []string{
			"Counting Sequences", "Subitizing", "Number Conservation",
		},
		recommendation: "Practice counting daily with manipulatives. Use fingers, blocks, or beads for tangible learning.",
	},
	{
		key:        SkillArithmetic,
		gapID:      "gap-numeracy-2",
		area:       "Basic Arithmetic (Addition & Subtraction)",
		floor:      50,
		confidence: 0.88,
		affectedSkills: []string{
			"Single-digit Addition", "Single-digit Subtraction", "Mental Maths",
		},
		recommendation: "Focus on number bonds and fact fluency. Use visual manipulatives and repeated practice.",
	},
	{
		key:        SkillProblemSolving,
		gapID:      "gap-numeracy-3",
		area:       "Problem Solving & Reasoning",
		floor:      45,
		confidence: 0.78,
		affectedSkills: []string{
			"Logical Thinking", "Word Problems", "Pattern Recognition",
		},
		recommendation: "Start with concrete word problems using real-world contexts. Build gradually to abstract reasoning.",
	},
}

// DetectLearningGaps maps sub-scores (0-100) to ranked findings, high
// severity first. Skills absent from subscores are skipped. Severity high is
// assigned only below highSeverityFloor, so a finding can never be high for
// a score at or above its documented floor.
func DetectLearningGaps(subscores map[string]int, classAverage int) []GapFinding {
	findings := make([]GapFinding, 0, len(skillRules))

	for _, rule := range skillRules {
		score, ok := subscores[rule.key]
		if !ok {
			continue
		}
		if !rule.triggered(score, classAverage) {
			continue
		}

		severity := SeverityMedium
		intervention := InterventionIntermediate
		if score < highSeverityFloor {
			severity = SeverityHigh
			intervention = InterventionBasic
		}

		findings = append(findings, GapFinding{
			GapID:             rule.gapID,
			Area:              rule.area,
			Severity:          severity,
			Confidence:        rule.confidence,
			AffectedSkills:    rule.affectedSkills,
			Recommendation:    rule.recommendation,
			InterventionLevel: intervention,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank(findings[i].Severity) < severityRank(findings[j].Severity)
	})
	return findings
}

func (r skillRule) triggered(score, classAverage int) bool {
	if r.relative {
		// Relative skills also trip on the absolute high floor so a weak
		// score in a weak class still surfaces.
		return score < classAverage-relativeMargin || score < highSeverityFloor
	}
	return score < r.floor
}

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}
