package techpulse_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"techpulse/domain"
)

const upsertArticleQuery = `
	INSERT INTO articles (id, title, url, source, score, author, timestamp, tags, comment_count, is_hot_on_source)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10)
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
	    url = EXCLUDED.url,
	    source = EXCLUDED.source,
	    score = EXCLUDED.score,
	    author = EXCLUDED.author,
	    timestamp = EXCLUDED.timestamp,
	    tags = EXCLUDED.tags,
	    comment_count = EXCLUDED.comment_count,
	    is_hot_on_source = EXCLUDED.is_hot_on_source
`

const selectArticleColumns = `id, title, url, source, score, author, timestamp, tags::text, comment_count, is_hot_on_source`

const findArticleByIDQuery = `SELECT ` + selectArticleColumns + ` FROM articles WHERE id = $1`

const findLatestArticlesQuery = `SELECT ` + selectArticleColumns + ` FROM articles ORDER BY timestamp DESC, id ASC LIMIT $1`

func (r *TechPulseDB) SaveArticle(ctx context.Context, article *domain.Article) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}

	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.pool.Exec(ctx, upsertArticleQuery,
		article.ID.String(),
		article.Title,
		article.URL,
		article.Source.String(),
		article.Score,
		article.Author,
		article.Timestamp,
		string(tags),
		int64(article.CommentCount),
		article.IsHotOnSource,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert article: %w", err)
	}
	return nil
}

// FindArticleByID returns nil, nil if not found.
func (r *TechPulseDB) FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errNoConnection
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, findArticleByIDQuery, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	return article, nil
}

func (r *TechPulseDB) FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errNoConnection
	}
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	rows, err := r.pool.Query(ctx, findLatestArticlesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}
	return articles, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		id, source, tags string
		commentCount     int64
		article          domain.Article
	)
	if err := row.Scan(&id, &article.Title, &article.URL, &source, &article.Score, &article.Author,
		&article.Timestamp, &tags, &commentCount, &article.IsHotOnSource); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &article.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", id, err)
	}
	article.ID = domain.ArticleIDFromPersisted(id)
	article.Source = domain.ParseSource(source)
	article.CommentCount = uint32(commentCount)
	return &article, nil
}
