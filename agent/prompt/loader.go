package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/content.txt
	contentRaw string

	//go:embed template/gap_analysis.txt
	gapAnalysisRaw string

	//go:embed template/concept_dependencies.txt
	conceptDependenciesRaw string

	//go:embed template/assessment.txt
	assessmentRaw string

	//go:embed template/answer_evaluation.txt
	answerEvaluationRaw string

	//go:embed template/motivation.txt
	motivationRaw string

	//go:embed template/daily_challenge.txt
	dailyChallengeRaw string

	//go:embed template/tutor.txt
	tutorRaw string

	//go:embed template/general.txt
	generalRaw string
)

// templateSet holds trimmed template bodies. The embed is compile-time and
// trimming is cheap, so loading is safe to do eagerly.
type templateSet struct {
	Classifier          string
	Content             string
	GapAnalysis         string
	ConceptDependencies string
	Assessment          string
	AnswerEvaluation    string
	Motivation          string
	DailyChallenge      string
	Tutor               string
	General             string
}

var templates = templateSet{
	Classifier:          strings.TrimSpace(classifierRaw),
	Content:             strings.TrimSpace(contentRaw),
	GapAnalysis:         strings.TrimSpace(gapAnalysisRaw),
	ConceptDependencies: strings.TrimSpace(conceptDependenciesRaw),
	Assessment:          strings.TrimSpace(assessmentRaw),
	AnswerEvaluation:    strings.TrimSpace(answerEvaluationRaw),
	Motivation:          strings.TrimSpace(motivationRaw),
	DailyChallenge:      strings.TrimSpace(dailyChallengeRaw),
	Tutor:               strings.TrimSpace(tutorRaw),
	General:             strings.TrimSpace(generalRaw),
}
