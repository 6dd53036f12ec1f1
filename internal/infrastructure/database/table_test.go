package database

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableInsertRejectsDuplicateKey(t *testing.T) {
	table := NewTable[string]()

	assert.True(t, table.Insert("a", "first"))
	assert.False(t, table.Insert("a", "second"))

	got, ok := table.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "first", got)
	assert.Equal(t, 1, table.Len())
}

func TestTableScanKeepsInsertionOrder(t *testing.T) {
	table := NewTable[int]()
	for i, key := range []string{"c", "a", "b", "d"} {
		table.Put(key, i)
	}
	table.Put("a", 10)

	assert.Equal(t, []int{0, 10, 2, 3}, table.Scan(nil))
	assert.Equal(t, []int{0, 10, 2}, table.Scan(func(v int) bool { return v%2 == 0 }))
}

func TestTableScanEmptyReturnsEmptySlice(t *testing.T) {
	rows := NewTable[int]().Scan(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestTableConcurrentInsert(t *testing.T) {
	table := NewTable[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Insert(fmt.Sprintf("k%d", i%10), i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, table.Len())
	assert.Len(t, table.Scan(nil), 10)
}
