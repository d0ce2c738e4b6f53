// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jllopis/pathfinder/pkg/core"
)

// SQLite is a catalog persisted in SQLite. Lookups hit the database on
// every call; the store is the source of truth, not a cache.
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an open database handle and ensures the schema.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	if db == nil {
		return nil, stderrors.New("db is nil")
	}
	if err := ensureCatalogSchema(db); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// OpenSQLite opens (or creates) the catalog database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	store, err := NewSQLite(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Import replaces the store contents with the given document in one
// transaction.
func (s *SQLite) Import(ctx context.Context, doc Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"resource_prereqs", "resources", "career_skills", "careers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	for _, career := range doc.Careers {
		key := core.CanonicalSkill(career.Name)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO careers (name, display_name, demand, trend, salary_min, salary_max)
			VALUES (?, ?, ?, ?, ?, ?)
		`, key, career.Name, career.Demand, career.Trend, career.SalaryMin, career.SalaryMax)
		if err != nil {
			return err
		}
		for position, skill := range career.Skills {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO career_skills (career, position, skill) VALUES (?, ?, ?)
			`, key, position, skill)
			if err != nil {
				return err
			}
		}
	}
	for _, resource := range doc.Resources {
		key := core.CanonicalSkill(resource.Skill)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resources (skill, display_skill, title, platform, duration_weeks)
			VALUES (?, ?, ?, ?, ?)
		`, key, resource.Skill, resource.Title, resource.Platform, resource.DurationWeeks)
		if err != nil {
			return err
		}
		for position, prereq := range resource.Prerequisites {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO resource_prereqs (skill, position, prereq) VALUES (?, ?, ?)
			`, key, position, prereq)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// MarketInsight implements MarketSource.
func (s *SQLite) MarketInsight(ctx context.Context, goal string) (core.MarketInsight, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT display_name, demand, trend, salary_min, salary_max
		FROM careers WHERE name = ?
	`, core.CanonicalSkill(goal))
	var (
		insight core.MarketInsight
		demand  string
		trend   string
	)
	err := row.Scan(&insight.Goal, &demand, &trend, &insight.Salary.Min, &insight.Salary.Max)
	if stderrors.Is(err, sql.ErrNoRows) {
		return core.MarketInsight{}, careerNotFound(goal)
	}
	if err != nil {
		return core.MarketInsight{}, err
	}
	insight.Demand = core.DemandLevel(demand)
	insight.Trend = core.Trend(trend)
	return insight, nil
}

// RequiredSkills implements SkillSource.
func (s *SQLite) RequiredSkills(ctx context.Context, goal string) (core.SkillSet, error) {
	key := core.CanonicalSkill(goal)
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM careers WHERE name = ?`, key).Scan(&exists)
	if err != nil {
		return core.SkillSet{}, err
	}
	if exists == 0 {
		return core.SkillSet{}, careerNotFound(goal)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT skill FROM career_skills WHERE career = ? ORDER BY position ASC
	`, key)
	if err != nil {
		return core.SkillSet{}, err
	}
	defer rows.Close()

	var skills []string
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return core.SkillSet{}, err
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return core.SkillSet{}, err
	}
	return core.NewSkillSet(skills...), nil
}

// LearningResource implements ResourceSource.
func (s *SQLite) LearningResource(ctx context.Context, skill string) (Resource, error) {
	key := core.CanonicalSkill(skill)
	row := s.db.QueryRowContext(ctx, `
		SELECT display_skill, title, platform, duration_weeks
		FROM resources WHERE skill = ?
	`, key)
	var resource Resource
	err := row.Scan(&resource.Skill, &resource.Title, &resource.Platform, &resource.DurationWeeks)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Resource{}, resourceNotFound(skill)
	}
	if err != nil {
		return Resource{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT prereq FROM resource_prereqs WHERE skill = ? ORDER BY position ASC
	`, key)
	if err != nil {
		return Resource{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var prereq string
		if err := rows.Scan(&prereq); err != nil {
			return Resource{}, err
		}
		resource.Prerequisites = append(resource.Prerequisites, prereq)
	}
	if err := rows.Err(); err != nil {
		return Resource{}, err
	}
	return resource, nil
}

func ensureCatalogSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS careers (
			name TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			demand TEXT NOT NULL,
			trend TEXT NOT NULL,
			salary_min INTEGER NOT NULL,
			salary_max INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS career_skills (
			career TEXT NOT NULL REFERENCES careers(name),
			position INTEGER NOT NULL,
			skill TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_career_skills_career ON career_skills(career);
		CREATE TABLE IF NOT EXISTS resources (
			skill TEXT PRIMARY KEY,
			display_skill TEXT NOT NULL,
			title TEXT NOT NULL,
			platform TEXT,
			duration_weeks INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS resource_prereqs (
			skill TEXT NOT NULL REFERENCES resources(skill),
			position INTEGER NOT NULL,
			prereq TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_resource_prereqs_skill ON resource_prereqs(skill);
	`)
	return err
}
