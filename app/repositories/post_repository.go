package repositories

import (
	"sort"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post. Title and slug uniqueness is enforced inside a
// single transaction; a collision fails the whole create with ErrDuplicate.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		if err := claimIndex(txn, PostTitleIndexPrefix+post.Title, post.ID); err != nil {
			return err
		}
		if err := claimIndex(txn, PostSlugIndexPrefix+post.Slug, post.ID); err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set([]byte(PostKeyPrefix+post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(PostKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves the posts matching filter, sorted by last-modified time in
// the requested direction, with offset/limit pagination applied after the
// sort.
func (r *BadgerPostRepository) List(filter PostFilter, limit, offset int, ascending bool) ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if filter.Matches(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if ascending {
			return posts[i].UpdatedAt.Before(posts[j].UpdatedAt)
		}
		return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
	})

	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

// Update rewrites an existing post. The slug index is never touched; the
// title index moves when the title changed.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	post.UpdatedAt = time.Now()

	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + post.ID)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		})
		if err != nil {
			return err
		}

		if existing.Title != post.Title {
			if err := claimIndex(txn, PostTitleIndexPrefix+post.Title, post.ID); err != nil {
				return err
			}
			if err := txn.Delete([]byte(PostTitleIndexPrefix + existing.Title)); err != nil {
				return err
			}
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post and its index keys by ID
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + id)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return err
		}

		if err := txn.Delete([]byte(PostTitleIndexPrefix + post.Title)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(PostSlugIndexPrefix + post.Slug)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// CountAll returns the total number of stored posts, ignoring any filter.
func (r *BadgerPostRepository) CountAll() (int, error) {
	return r.countPosts(func(*models.Post) bool { return true })
}

// CountCreatedSince returns how many posts were created at or after since.
func (r *BadgerPostRepository) CountCreatedSince(since time.Time) (int, error) {
	return r.countPosts(func(p *models.Post) bool {
		return !p.CreatedAt.Before(since)
	})
}

func (r *BadgerPostRepository) countPosts(pred func(*models.Post) bool) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if pred(&post) {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
