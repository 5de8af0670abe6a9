// Package bolt_db stores techpulse data in a single bbolt file, one bucket
// per collection with JSON values.
package bolt_db

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"techpulse/domain"
	"techpulse/utils/logger"
)

var (
	articlesBucket = []byte("articles")
	reportsBucket  = []byte("trend_reports")
	timelineBucket = []byte("timeline_events")
	usersBucket    = []byte("user_profiles")
)

type BoltDB struct {
	db *bolt.DB
}

func Open(path string) (*BoltDB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{articlesBucket, reportsBucket, timelineBucket, usersBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Logger.Info("bolt database ready", "path", path)
	return &BoltDB{db: db}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func (s *BoltDB) SaveArticle(ctx context.Context, article *domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(articlesBucket, []byte(article.ID.String()), article)
}

func (s *BoltDB) FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var article domain.Article
	found, err := s.get(articlesBucket, []byte(id.String()), &article)
	if err != nil || !found {
		return nil, err
	}
	return &article, nil
}

func (s *BoltDB) FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	var all []*domain.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(articlesBucket).ForEach(func(_, v []byte) error {
			var a domain.Article
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			all = append(all, &a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Timestamp != all[j].Timestamp {
			return all[i].Timestamp > all[j].Timestamp
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	if len(all) > limit {
		all = all[:limit]
	}
	if all == nil {
		all = []*domain.Article{}
	}
	return all, nil
}

// SaveTrendReport appends under a monotonically increasing sequence key, so
// iteration order is insertion order.
func (s *BoltDB) SaveTrendReport(ctx context.Context, report *domain.TrendReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(reportsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, data)
	})
}

func (s *BoltDB) FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var latest *domain.TrendReport
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).ForEach(func(_, v []byte) error {
			var r domain.TrendReport
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			if latest == nil || r.Timestamp >= latest.Timestamp {
				latest = &r
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return latest, nil
}

type timelineRecord struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	ImportanceScore float64 `json:"importance_score"`
}

func (s *BoltDB) SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(timelineBucket, []byte(event.ID), timelineRecord{
		ID:              event.ID,
		Title:           event.Title,
		Date:            event.DateString(),
		Description:     event.Description,
		Category:        event.Category,
		ImportanceScore: event.ImportanceScore,
	})
}

func (s *BoltDB) ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	events := []*domain.TimelineEvent{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(timelineBucket).ForEach(func(_, v []byte) error {
			var rec timelineRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			date, err := time.Parse(domain.TimelineDateLayout, rec.Date)
			if err != nil {
				return fmt.Errorf("decode date for %s: %w", rec.ID, err)
			}
			events = append(events, &domain.TimelineEvent{
				ID:              rec.ID,
				Title:           rec.Title,
				Date:            date,
				Description:     rec.Description,
				Category:        rec.Category,
				ImportanceScore: rec.ImportanceScore,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.After(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (s *BoltDB) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(usersBucket, []byte(profile.ID), profile)
}

func (s *BoltDB) FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var profile domain.UserProfile
	found, err := s.get(usersBucket, []byte(id), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (s *BoltDB) put(bucket, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
}

func (s *BoltDB) get(bucket, key []byte, dest any) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get(key)
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, dest)
	})
	return found, err
}
