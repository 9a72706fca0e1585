package contract

// AgentID identifies a registered agent in the coordinator registry.
type AgentID string

const (
	AgentContentGenerator AgentID = "content-generator"
	AgentGapAnalyzer      AgentID = "gap-analyzer"
	AgentAssessor         AgentID = "assessor"
	AgentMotivator        AgentID = "motivator"
	AgentTutor            AgentID = "tutor"
	AgentGeneralAssistant AgentID = "general-assistant"
)

type AgentStatus string

const (
	StatusActive     AgentStatus = "active"
	StatusIdle       AgentStatus = "idle"
	StatusProcessing AgentStatus = "processing"
)

// AgentDescriptor is the registry-facing identity of an agent. Status is
// mutated only by the owning agent while it handles a request.
type AgentDescriptor struct {
	ID           AgentID     `json:"id"`
	Name         string      `json:"name"`
	Capabilities []string    `json:"capabilities"`
	Priority     int         `json:"priority"`
	Status       AgentStatus `json:"status"`
}

// RoutingContext is the immutable per-request bag the caller owns. It is
// passed read-only through coordinator -> classifier -> agent -> prompt.
type RoutingContext struct {
	Grade          int            `json:"grade,omitempty"`
	Subject        string         `json:"subject,omitempty"`
	Difficulty     string         `json:"difficulty,omitempty"`
	LearningStyle  string         `json:"learning_style,omitempty"`
	Language       string         `json:"language,omitempty"`
	RecentScores   map[string]int `json:"recent_scores,omitempty"`
	RecentMistakes []string       `json:"recent_mistakes,omitempty"`
	CurrentTopic   string         `json:"current_topic,omitempty"`
	Mood           string         `json:"mood,omitempty"`
	Streak         int            `json:"streak,omitempty"`
	ExamType       string         `json:"exam_type,omitempty"`
	TimeLimitMins  int            `json:"time_limit_mins,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`
}

type IntentType string

const (
	IntentLearningContent IntentType = "learning_content"
	IntentGapAnalysis     IntentType = "gap_analysis"
	IntentAssessment      IntentType = "assessment"
	IntentMotivation      IntentType = "motivation"
	IntentTutoring        IntentType = "tutoring"
	IntentOther           IntentType = "other"
)

// KnownIntent reports whether t belongs to the closed intent set.
func KnownIntent(t IntentType) bool {
	switch t {
	case IntentLearningContent, IntentGapAnalysis, IntentAssessment,
		IntentMotivation, IntentTutoring, IntentOther:
		return true
	}
	return false
}

// IntentResult is produced fresh per request by the classifier and never
// persisted.
type IntentResult struct {
	Type        IntentType `json:"type"`
	Confidence  float64    `json:"confidence"`
	SubjectArea string     `json:"subjectArea"`
}

// GenerationSettings is the configuration bag for one generative call.
// TopK is carried for contract completeness; OpenAI-compatible endpoints do
// not accept it and the client drops it.
type GenerationSettings struct {
	Temperature     float32 `json:"temperature,omitempty"`
	TopP            float32 `json:"top_p,omitempty"`
	TopK            int     `json:"top_k,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"`
}

type TurnRole string

const (
	RoleUser  TurnRole = "user"
	RoleTutor TurnRole = "tutor"
)

// ConversationTurn is owned exclusively by one tutor agent instance.
type ConversationTurn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// ConversationSummary is offered to logging/analytics collaborators.
// Topic extraction is best-effort and must not be relied on for correctness.
type ConversationSummary struct {
	Messages int      `json:"messages"`
	Topics   []string `json:"topics"`
	Duration string   `json:"duration"`
}

/* --------------------------- agent result shapes -------------------------- */

// ContentResult is the lesson payload the content generator owns.
type ContentResult struct {
	Introduction string   `json:"introduction"`
	Concepts     []string `json:"concepts"`
	VisualAids   []string `json:"visualAids"`
	Activities   []string `json:"activities"`
	Applications []string `json:"applications"`
	Quiz         []string `json:"quiz"`
	NextSteps    []string `json:"nextSteps"`
}

type IdentifiedGap struct {
	Gap      string `json:"gap"`
	Severity string `json:"severity"`
	Topic    string `json:"topic"`
}

type RemediationPlan struct {
	Steps         []string `json:"steps"`
	EstimatedTime string   `json:"estimatedTime"`
	Resources     []string `json:"resources"`
}

// GapNarrative is the holistic analysis the gap analyzer returns from Handle.
// It complements, never replaces, the deterministic gap scorer.
type GapNarrative struct {
	GapsIdentified  []IdentifiedGap `json:"gapsIdentified"`
	RootCause       string          `json:"rootCause"`
	Prerequisites   []string        `json:"prerequisites"`
	RemediationPlan RemediationPlan `json:"remediationPlan"`
	ConfidenceScore float64         `json:"confidenceScore"`
}

type ConceptPrerequisite struct {
	Concept    string `json:"concept"`
	Importance string `json:"importance"`
}

type ConceptDependencies struct {
	Prerequisites     []ConceptPrerequisite `json:"prerequisites"`
	CoreComponents    []string              `json:"coreComponents"`
	AdvancedTopics    []string              `json:"advancedTopics"`
	CrossSubjectLinks []string              `json:"crossSubjectLinks"`
}

type AssessmentQuestion struct {
	Tier         string   `json:"tier"`
	Question     string   `json:"question"`
	Options      []string `json:"options,omitempty"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
	Marks        int      `json:"marks"`
	SkillsTested []string `json:"skillsTested"`
	QuestionType string   `json:"questionType"`
}

type AssessmentResult struct {
	Questions  []AssessmentQuestion `json:"questions"`
	TotalMarks int                  `json:"totalMarks"`
	TimeLimit  string               `json:"timeLimit"`
}

// AnswerEvaluation delegates judgment to the external service; callers must
// not assume byte-identical output for identical input.
type AnswerEvaluation struct {
	Score           int      `json:"score"`
	IsCorrect       bool     `json:"isCorrect"`
	PartialCredit   []string `json:"partialCredit"`
	Mistakes        []string `json:"mistakes"`
	Feedback        string   `json:"feedback"`
	ImprovementTips []string `json:"improvementTips"`
	NextPractice    string   `json:"nextPractice"`
}

type MotivationResult struct {
	Message          string   `json:"message"`
	ActionItems      []string `json:"actionItems"`
	InspirationStory string   `json:"inspirationStory"`
	CelebrationNote  string   `json:"celebrationNote"`
	Emoji            string   `json:"emoji"`
}

type DailyChallenge struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Task            string `json:"task"`
	EstimatedTime   string `json:"estimatedTime"`
	Points          int    `json:"points"`
	FunFact         string `json:"funFact"`
	ShareableResult string `json:"shareableResult"`
}

type TutorReply struct {
	Response          string   `json:"response"`
	KeyPoints         []string `json:"keyPoints"`
	PracticeExercise  string   `json:"practiceExercise"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	Resources         []string `json:"resources"`
}

// GeneralResult is the fallback payload; Type is always "general_help".
type GeneralResult struct {
	Response string `json:"response"`
	Type     string `json:"type"`
}

// GeneralHelpType tags every general assistant reply.
const GeneralHelpType = "general_help"
