package repositories

import (
	"strings"
	"testing"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
)

func TestEventListQuery(t *testing.T) {
	repo := NewEventRepository(nil)

	sql, args, err := repo.listQuery(dto.EventFilter{Tag: "tech", Month: 9}, 20, 10)
	if err != nil {
		t.Fatalf("listQuery() error = %v", err)
	}
	if !strings.Contains(sql, "tags @> ARRAY[$1]::text[]") {
		t.Errorf("tag filter should use array containment, got: %s", sql)
	}
	if !strings.Contains(sql, "EXTRACT(MONTH FROM event_date)") {
		t.Errorf("month filter missing from query: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY event_date ASC, id ASC") {
		t.Errorf("events must be ordered by event_date then id: %s", sql)
	}
	if !strings.Contains(sql, "LIMIT 10 OFFSET 20") {
		t.Errorf("pagination clause wrong: %s", sql)
	}
	if len(args) != 2 || args[0] != "tech" {
		t.Errorf("args = %v", args)
	}
}

func TestEventListQueryUnfiltered(t *testing.T) {
	repo := NewEventRepository(nil)

	sql, _, err := repo.listQuery(dto.EventFilter{}, 0, 10)
	if err != nil {
		t.Fatalf("listQuery() error = %v", err)
	}
	if strings.Contains(sql, "ILIKE") || strings.Contains(sql, "@>") {
		t.Errorf("unfiltered query should carry no filter conditions: %s", sql)
	}
}

func TestJobListQuery(t *testing.T) {
	repo := NewJobRepository(nil)

	sql, args, err := repo.listQuery(dto.JobFilter{JobType: "full-time"}, 0, 10)
	if err != nil {
		t.Fatalf("listQuery() error = %v", err)
	}
	if !strings.Contains(sql, "LEFT JOIN job_applications") {
		t.Errorf("application counts should ride along via LEFT JOIN: %s", sql)
	}
	if !strings.Contains(sql, "GROUP BY j.id") {
		t.Errorf("grouped count requires GROUP BY j.id: %s", sql)
	}
	if !strings.Contains(sql, "j.is_active = $1") {
		t.Errorf("public listings must filter inactive postings: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY j.created_at DESC, j.id DESC") {
		t.Errorf("jobs must be ordered newest first with an id tiebreak: %s", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want [true full-time]", args)
	}
}

func TestAppreciateQueryIsSingleStatement(t *testing.T) {
	// The counter bump must happen store-side in one statement; a
	// read-then-write would lose concurrent increments.
	if !strings.HasPrefix(appreciateQuery, "UPDATE volunteers SET appreciation_count = appreciation_count + 1") {
		t.Errorf("appreciation must be an in-place increment: %s", appreciateQuery)
	}
	if !strings.Contains(appreciateQuery, "RETURNING appreciation_count") {
		t.Errorf("appreciation must return the new count from the same statement: %s", appreciateQuery)
	}
}

func TestJobListQueryIncludeInactive(t *testing.T) {
	repo := NewJobRepository(nil)

	sql, _, err := repo.listQuery(dto.JobFilter{IncludeInactive: true}, 0, 10)
	if err != nil {
		t.Fatalf("listQuery() error = %v", err)
	}
	if strings.Contains(sql, "is_active") {
		t.Errorf("includeInactive must drop the is_active condition: %s", sql)
	}
}
