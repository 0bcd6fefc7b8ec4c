package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/paceup/paceup/backend-go/internal/db"
	"github.com/paceup/paceup/backend-go/internal/element"
	"github.com/paceup/paceup/backend-go/internal/typeid"
)

var (
	ErrNotFound      = errors.New("article not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidLayout = errors.New("invalid layout")
)

type Service struct {
	store *db.Store
}

func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

type CreateInput struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	HeroImageURL string `json:"heroImageUrl"`
	BadgeText    string `json:"badgeText"`
	Label        string `json:"label"`
}

func (s *Service) Create(ctx context.Context, in CreateInput, ownerID string) (*Article, error) {
	blocks, _ := json.Marshal([]Block{})

	row, err := s.store.CreateArticle(ctx, db.Article{
		ID:           typeid.NewArticleID(),
		OwnerID:      ownerID,
		Title:        in.Title,
		Subtitle:     in.Subtitle,
		Description:  in.Description,
		HeroImageURL: in.HeroImageURL,
		BadgeText:    in.BadgeText,
		Label:        in.Label,
		Blocks:       blocks,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	return rowToArticle(row)
}

func (s *Service) Get(ctx context.Context, articleID, userID string) (*Article, error) {
	row, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	if row.OwnerID != userID {
		return nil, ErrForbidden
	}
	return rowToArticle(row)
}

func (s *Service) List(ctx context.Context, userID string) ([]Article, error) {
	rows, err := s.store.ListArticles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]Article, 0, len(rows))
	for _, row := range rows {
		a, err := rowToArticle(row)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, nil
}

func (s *Service) Delete(ctx context.Context, articleID, userID string) error {
	row, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get article: %w", err)
	}
	if row.OwnerID != userID {
		return ErrForbidden
	}
	return s.store.DeleteArticle(ctx, articleID)
}

// GetLayout returns the latest saved flyer layout for an article as the
// raw element array, or nil when none has been saved yet (the editor then
// derives the initial scene from the article itself).
func (s *Service) GetLayout(ctx context.Context, articleID, userID string) (json.RawMessage, error) {
	if _, err := s.Get(ctx, articleID, userID); err != nil {
		return nil, err
	}

	layout, err := s.store.GetLatestLayout(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout: %w", err)
	}
	return layout.Elements, nil
}

// SaveLayout persists a new layout revision. The element array is the wire
// format produced by the editor's elements-changed callback; it is decoded
// once to reject garbage but stored as submitted, so fields this backend
// does not understand survive the round trip.
func (s *Service) SaveLayout(ctx context.Context, articleID, userID string, elements json.RawMessage) error {
	if _, err := s.Get(ctx, articleID, userID); err != nil {
		return err
	}

	var els []element.Element
	if err := json.Unmarshal(elements, &els); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	return s.saveRevision(ctx, articleID, elements)
}

// SaveLayoutUnchecked is the session-hub save path: membership was checked
// when the websocket was accepted.
func (s *Service) SaveLayoutUnchecked(ctx context.Context, articleID string, elements json.RawMessage) error {
	return s.saveRevision(ctx, articleID, elements)
}

func (s *Service) saveRevision(ctx context.Context, articleID string, elements json.RawMessage) error {
	nextVersion := int32(1)
	current, err := s.store.GetLatestLayout(ctx, articleID)
	if err == nil {
		nextVersion = current.Version + 1
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("get layout: %w", err)
	}

	_, err = s.store.CreateLayout(ctx, db.Layout{
		ID:        typeid.NewLayoutID(),
		ArticleID: articleID,
		Version:   nextVersion,
		Elements:  elements,
	})
	if err != nil {
		return fmt.Errorf("create layout: %w", err)
	}
	return nil
}

// LoadLayoutElements decodes the latest saved layout for the session hub.
func (s *Service) LoadLayoutElements(ctx context.Context, articleID string) ([]element.Element, error) {
	layout, err := s.store.GetLatestLayout(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout: %w", err)
	}

	var els []element.Element
	if err := json.Unmarshal(layout.Elements, &els); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return els, nil
}

// IsOwner reports whether userID owns the article; used by the websocket
// accept path.
func (s *Service) IsOwner(ctx context.Context, articleID, userID string) (bool, error) {
	row, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("get article: %w", err)
	}
	return row.OwnerID == userID, nil
}

func rowToArticle(row db.Article) (*Article, error) {
	var blocks []Block
	if len(row.Blocks) > 0 {
		if err := json.Unmarshal(row.Blocks, &blocks); err != nil {
			return nil, fmt.Errorf("decode blocks: %w", err)
		}
	}

	return &Article{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Title:        row.Title,
		Subtitle:     row.Subtitle,
		Description:  row.Description,
		HeroImageURL: row.HeroImageURL,
		BadgeText:    row.BadgeText,
		Label:        row.Label,
		Blocks:       blocks,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    row.UpdatedAt.Format(time.RFC3339),
	}, nil
}
