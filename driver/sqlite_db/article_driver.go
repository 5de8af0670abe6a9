package sqlite_db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"techpulse/domain"
)

const articleColumns = `id, title, url, source, score, author, timestamp, tags, comment_count, is_hot_on_source`

func (s *SQLiteDB) SaveArticle(ctx context.Context, article *domain.Article) error {
	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `INSERT OR REPLACE INTO articles (` + articleColumns + `)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		article.ID.String(),
		article.Title,
		article.URL,
		article.Source.String(),
		article.Score,
		article.Author,
		article.Timestamp,
		string(tagsJSON),
		int64(article.CommentCount),
		article.IsHotOnSource,
	)
	return err
}

func (s *SQLiteDB) FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`
	article, err := scanArticle(s.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *SQLiteDB) FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY timestamp DESC, id ASC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var (
		id, source, tagsJSON string
		commentCount         int64
		article              domain.Article
	)
	err := row.Scan(&id, &article.Title, &article.URL, &source, &article.Score, &article.Author,
		&article.Timestamp, &tagsJSON, &commentCount, &article.IsHotOnSource)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &article.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", id, err)
	}
	article.ID = domain.ArticleIDFromPersisted(id)
	article.Source = domain.ParseSource(source)
	article.CommentCount = uint32(commentCount)
	return &article, nil
}
