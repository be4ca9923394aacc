package filestore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSaveAndGet_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	doc := map[string]interface{}{
		"name":   "Sunrise Bakery",
		"flavor": "sourdough",
	}
	assert.NoError(t, s.Save("profiles", "p-1", doc))

	var got map[string]interface{}
	found, err := s.Get("profiles", "p-1", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Sunrise Bakery", got["name"])
	assert.Equal(t, "sourdough", got["flavor"])
	assert.Equal(t, "p-1", got["id"])

	// updatedAt is stamped on every save.
	stamp, ok := got["updatedAt"].(string)
	assert.True(t, ok)
	_, err = time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err)
}

func TestGet_MissingDocument(t *testing.T) {
	s := NewStore(t.TempDir())

	var got map[string]interface{}
	found, err := s.Get("profiles", "nope", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSave_OverwritesExisting(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.NoError(t, s.Save("posts", "p-1", map[string]interface{}{"content": "first"}))
	assert.NoError(t, s.Save("posts", "p-1", map[string]interface{}{"content": "second"}))

	var got map[string]interface{}
	found, err := s.Get("posts", "p-1", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got["content"])
}

func TestDelete(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.NoError(t, s.Save("posts", "p-1", map[string]interface{}{"content": "bye"}))

	existed, err := s.Delete("posts", "p-1")
	assert.NoError(t, err)
	assert.True(t, existed)

	var got map[string]interface{}
	found, err := s.Get("posts", "p-1", &got)
	assert.NoError(t, err)
	assert.False(t, found)

	existed, err = s.Delete("posts", "p-1")
	assert.NoError(t, err)
	assert.False(t, existed)
}

func TestGetAll(t *testing.T) {
	s := NewStore(t.TempDir())

	docs, err := s.GetAll("empty-collection")
	assert.NoError(t, err)
	assert.Empty(t, docs)

	assert.NoError(t, s.Save("posts", "p-1", map[string]interface{}{"content": "one"}))
	assert.NoError(t, s.Save("posts", "p-2", map[string]interface{}{"content": "two"}))

	docs, err = s.GetAll("posts")
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestFind(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.NoError(t, s.Save("posts", "p-1", map[string]interface{}{"userId": "ann"}))
	assert.NoError(t, s.Save("posts", "p-2", map[string]interface{}{"userId": "bob"}))
	assert.NoError(t, s.Save("posts", "p-3", map[string]interface{}{"userId": "ann"}))

	matched, err := s.Find("posts", func(raw []byte) bool {
		var doc struct {
			UserID string `json:"userId"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return false
		}
		return doc.UserID == "ann"
	})
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
}
