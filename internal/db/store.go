// Package db provides the pgx connection pool and hand-written query
// methods for users, articles, and saved flyer layouts.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	ID          string
	Email       string
	Password    string
	DisplayName string
	CreatedAt   time.Time
}

type Article struct {
	ID           string
	OwnerID      string
	Title        string
	Subtitle     string
	Description  string
	HeroImageURL string
	BadgeText    string
	Label        string
	Blocks       json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Layout struct {
	ID        string
	ArticleID string
	Version   int32
	Elements  json.RawMessage
	CreatedAt time.Time
}

// Store wraps the pool with typed queries.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// --- Users ---

func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, display_name, created_at`,
		u.ID, u.Email, u.Password, u.DisplayName)
	return scanUser(row)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, email, password, display_name, created_at
		FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, email, password, display_name, created_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt)
	return u, err
}

// --- Articles ---

func (s *Store) CreateArticle(ctx context.Context, a Article) (Article, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO articles (id, owner_id, title, subtitle, description, hero_image_url, badge_text, label, blocks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, owner_id, title, subtitle, description, hero_image_url, badge_text, label, blocks, created_at, updated_at`,
		a.ID, a.OwnerID, a.Title, a.Subtitle, a.Description, a.HeroImageURL, a.BadgeText, a.Label, a.Blocks)
	return scanArticle(row)
}

func (s *Store) GetArticle(ctx context.Context, id string) (Article, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, subtitle, description, hero_image_url, badge_text, label, blocks, created_at, updated_at
		FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

func (s *Store) ListArticles(ctx context.Context, ownerID string) ([]Article, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, owner_id, title, subtitle, description, hero_image_url, badge_text, label, blocks, created_at, updated_at
		FROM articles WHERE owner_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var out []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return err
}

func scanArticle(row pgx.Row) (Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Subtitle, &a.Description,
		&a.HeroImageURL, &a.BadgeText, &a.Label, &a.Blocks, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// --- Layouts ---

func (s *Store) CreateLayout(ctx context.Context, l Layout) (Layout, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO layouts (id, article_id, version, elements)
		VALUES ($1, $2, $3, $4)
		RETURNING id, article_id, version, elements, created_at`,
		l.ID, l.ArticleID, l.Version, l.Elements)
	var out Layout
	err := row.Scan(&out.ID, &out.ArticleID, &out.Version, &out.Elements, &out.CreatedAt)
	return out, err
}

func (s *Store) GetLatestLayout(ctx context.Context, articleID string) (Layout, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, article_id, version, elements, created_at
		FROM layouts WHERE article_id = $1
		ORDER BY version DESC LIMIT 1`, articleID)
	var out Layout
	err := row.Scan(&out.ID, &out.ArticleID, &out.Version, &out.Elements, &out.CreatedAt)
	return out, err
}
