// Package testutil holds in-memory stand-ins for the MongoDB repositories, the
// image host and the event broker.
package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/alimikegami/content-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// collection keeps documents as bson maps so partial $set updates behave the
// same way they do against MongoDB.
type collection[T any] struct {
	mu      sync.Mutex
	docs    []bson.M
	unique  string
	Inserts int
	Updates []bson.M
	Deletes int
}

func toDoc(v interface{}) bson.M {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}

	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		panic(err)
	}
	return doc
}

func fromDoc[T any](doc bson.M) T {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func (c *collection[T]) insert(v T) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := toDoc(v)
	if c.unique != "" {
		for _, existing := range c.docs {
			if existing[c.unique] == doc[c.unique] {
				return primitive.NilObjectID, errs.ErrDuplicate
			}
		}
	}

	id := primitive.NewObjectID()
	doc["_id"] = id
	now := primitive.NewDateTimeFromTime(time.Now())
	doc["createdAt"] = now
	doc["updatedAt"] = now

	c.docs = append(c.docs, doc)
	c.Inserts++
	return id, nil
}

func (c *collection[T]) Seed(v T) primitive.ObjectID {
	id, err := c.insert(v)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	c.Inserts--
	c.mu.Unlock()
	return id
}

func (c *collection[T]) indexOf(id primitive.ObjectID) int {
	for i, doc := range c.docs {
		if doc["_id"] == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) findByHex(hex string) (T, error) {
	var zero T
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return zero, errs.ErrNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, errs.ErrNotFound
	}
	return fromDoc[T](c.docs[i]), nil
}

func (c *collection[T]) findBy(key string, value interface{}) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if doc[key] == value {
			return fromDoc[T](doc), nil
		}
	}

	var zero T
	return zero, errs.ErrNotFound
}

// newest returns documents in reverse insertion order, limited when limit > 0.
func (c *collection[T]) newest(limit int64) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []T{}
	for i := len(c.docs) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		out = append(out, fromDoc[T](c.docs[i]))
	}
	return out
}

func (c *collection[T]) sortedBy(key string) []T {
	c.mu.Lock()
	docs := make([]bson.M, len(c.docs))
	copy(docs, c.docs)
	c.mu.Unlock()

	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := docs[i][key].(string)
		b, _ := docs[j][key].(string)
		return a < b
	})

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromDoc[T](doc))
	}
	return out
}

func (c *collection[T]) update(id primitive.ObjectID, fields bson.M) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}

	if c.unique != "" {
		if value, ok := fields[c.unique]; ok {
			for j, other := range c.docs {
				if j != i && other[c.unique] == value {
					return errs.ErrDuplicate
				}
			}
		}
	}

	applied := bson.M{}
	for key, value := range fields {
		c.docs[i][key] = value
		applied[key] = value
	}
	c.docs[i]["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	c.Updates = append(c.Updates, applied)
	return nil
}

func (c *collection[T]) remove(id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}

	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	c.Deletes++
	return nil
}

func (c *collection[T]) count() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.docs))
}

// Raw exposes the stored document so tests can compare untouched fields.
func (c *collection[T]) Raw(id primitive.ObjectID) bson.M {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}

	out := bson.M{}
	for key, value := range c.docs[i] {
		out[key] = value
	}
	return out
}
