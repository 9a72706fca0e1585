// Package state persists scoring output and conversation summaries in
// Postgres. Nothing in the routing core calls it implicitly; callers decide
// when a result is worth keeping.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/skillradar/agentcore/agent/contract"
	gapsx "github.com/skillradar/agentcore/agent/gaps"
)

var (
	ErrEmptyStudentID = errors.New("student id is empty")
	ErrEmptySessionID = errors.New("session id is empty")
)

const defaultQueryTimeout = 10 * time.Second

// Store is the persistence contract offered to callers of the routing core.
type Store interface {
	SaveGapFindings(ctx context.Context, studentID string, findings []gapsx.GapFinding) error
	SaveConversationSummary(ctx context.Context, sessionID string, summary contractx.ConversationSummary) error
	RecentGapFindings(ctx context.Context, studentID string, limit int) ([]GapRecord, error)
}

// GapRecord is one persisted gap finding.
type GapRecord struct {
	bun.BaseModel `bun:"table:gap_findings,alias:gf"`

	ID             string    `bun:"id,pk"`
	StudentID      string    `bun:"student_id,notnull"`
	GapID          string    `bun:"gap_id,notnull"`
	Area           string    `bun:"area,notnull"`
	Severity       string    `bun:"severity,notnull"`
	Confidence     float64   `bun:"confidence,notnull"`
	AffectedSkills []string  `bun:"affected_skills,array"`
	Recommendation string    `bun:"recommendation"`
	Intervention   string    `bun:"intervention"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

// ConversationRecord is one persisted session summary.
type ConversationRecord struct {
	bun.BaseModel `bun:"table:conversation_summaries,alias:cs"`

	ID        string    `bun:"id,pk"`
	SessionID string    `bun:"session_id,notnull"`
	Messages  int       `bun:"messages,notnull"`
	Topics    []string  `bun:"topics,array"`
	Duration  string    `bun:"duration"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// NewGapRecords converts scorer output into rows ready to insert. Ids and
// timestamps are assigned here so the scorer stays pure.
func NewGapRecords(studentID string, findings []gapsx.GapFinding, now time.Time) []GapRecord {
	records := make([]GapRecord, 0, len(findings))
	for _, f := range findings {
		records = append(records, GapRecord{
			ID:             uuid.NewString(),
			StudentID:      studentID,
			GapID:          f.GapID,
			Area:           f.Area,
			Severity:       string(f.Severity),
			Confidence:     f.Confidence,
			AffectedSkills: f.AffectedSkills,
			Recommendation: f.Recommendation,
			Intervention:   string(f.InterventionLevel),
			CreatedAt:      now.UTC(),
		})
	}
	return records
}

// Option customizes PostgresStore.
type Option func(*PostgresStore)

// WithQueryTimeout bounds every store call that arrives without a deadline.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *PostgresStore) {
		if timeout > 0 {
			s.queryTimeout = timeout
		}
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *PostgresStore) {
		if now != nil {
			s.now = now
		}
	}
}

// PostgresStore persists records with bun over the native pgdriver.
type PostgresStore struct {
	db           *bun.DB
	queryTimeout time.Duration
	now          func() time.Time
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore opens a connection pool for dsn. The caller owns Close.
func NewPostgresStore(dsn string, opts ...Option) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is empty")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	s := &PostgresStore{
		db:           bun.NewDB(sqldb, pgdialect.New()),
		queryTimeout: defaultQueryTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureSchema creates both tables when they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.NewCreateTable().Model((*GapRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create gap_findings table: %w", err)
	}
	if _, err := s.db.NewCreateTable().Model((*ConversationRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create conversation_summaries table: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveGapFindings(ctx context.Context, studentID string, findings []gapsx.GapFinding) error {
	if strings.TrimSpace(studentID) == "" {
		return ErrEmptyStudentID
	}
	if len(findings) == 0 {
		return nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	records := NewGapRecords(studentID, findings, s.now())
	if _, err := s.db.NewInsert().Model(&records).Exec(ctx); err != nil {
		return fmt.Errorf("insert gap findings: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveConversationSummary(ctx context.Context, sessionID string, summary contractx.ConversationSummary) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrEmptySessionID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record := ConversationRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Messages:  summary.Messages,
		Topics:    summary.Topics,
		Duration:  summary.Duration,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(&record).Exec(ctx); err != nil {
		return fmt.Errorf("insert conversation summary: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecentGapFindings(ctx context.Context, studentID string, limit int) ([]GapRecord, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, ErrEmptyStudentID
	}
	if limit <= 0 {
		limit = 20
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var records []GapRecord
	err := s.db.NewSelect().
		Model(&records).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select gap findings: %w", err)
	}
	return records, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
