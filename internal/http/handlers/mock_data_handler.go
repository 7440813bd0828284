package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"access_gate/internal/authz"
)

const elementMockData = "mock_data"

// MockObject is a demo protected record with an explicit owner, there to
// exercise the own-vs-all permission scope end to end.
type MockObject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner"`
}

// MockStore keeps the demo objects in process memory. Guarded by a mutex
// since requests run concurrently.
type MockStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []MockObject
}

// NewMockStore seeds the fixture rows: two owned by real seeded users,
// one by an owner id that matches nobody.
func NewMockStore() *MockStore {
	return &MockStore{
		nextID: 4,
		rows: []MockObject{
			{ID: 1, Name: "Test Object 1", OwnerID: 1},
			{ID: 2, Name: "Test Object 2", OwnerID: 2},
			{ID: 3, Name: "Test Object 3", OwnerID: 999},
		},
	}
}

func (s *MockStore) list() []MockObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MockObject, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *MockStore) get(id int64) (MockObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID == id {
			return row, true
		}
	}
	return MockObject{}, false
}

func (s *MockStore) add(name string, ownerID int64) MockObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := MockObject{ID: s.nextID, Name: name, OwnerID: ownerID}
	s.nextID++
	s.rows = append(s.rows, row)
	return row
}

func (s *MockStore) update(id int64, name string) (MockObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Name = name
			return s.rows[i], true
		}
	}
	return MockObject{}, false
}

func (s *MockStore) remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return true
		}
	}
	return false
}

// ListMockData returns rows visible to the caller per the read scope.
func ListMockData(store *MockStore, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, scope, ok := listScope(c, engine, elementMockData)
		if !ok {
			return
		}

		rows := store.list()
		if scope == authz.ScopeOwn {
			own := rows[:0]
			for _, row := range rows {
				if row.OwnerID == ident.ID {
					own = append(own, row)
				}
			}
			rows = own
		}
		c.JSON(http.StatusOK, gin.H{"objects": rows})
	}
}

// GetMockData returns one row, subject to the own/all read check.
func GetMockData(store *MockStore, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, ok := findMockObject(c, store)
		if !ok {
			return
		}
		if _, ok := checkOwned(c, engine, elementMockData, row.OwnerID); !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"object": row})
	}
}

// CreateMockData adds a row owned by the caller. Creation has no
// pre-existing owner, so only the plain create flag is consulted.
func CreateMockData(store *MockStore, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := checkAccess(c, engine, elementMockData, true)
		if !ok {
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		row := store.add(input.Name, ident.ID)
		c.JSON(http.StatusCreated, gin.H{"object": row})
	}
}

// UpdateMockData renames a row, subject to the own/all update check.
func UpdateMockData(store *MockStore, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, ok := findMockObject(c, store)
		if !ok {
			return
		}
		if _, ok := checkOwned(c, engine, elementMockData, row.OwnerID); !ok {
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, _ := store.update(row.ID, input.Name)
		c.JSON(http.StatusOK, gin.H{"object": updated})
	}
}

// DeleteMockData removes a row, subject to the own/all delete check.
func DeleteMockData(store *MockStore, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, ok := findMockObject(c, store)
		if !ok {
			return
		}
		if _, ok := checkOwned(c, engine, elementMockData, row.OwnerID); !ok {
			return
		}

		store.remove(row.ID)
		c.Status(http.StatusNoContent)
	}
}

func findMockObject(c *gin.Context, store *MockStore) (MockObject, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object id"})
		return MockObject{}, false
	}

	row, ok := store.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "object not found"})
		return MockObject{}, false
	}
	return row, true
}
