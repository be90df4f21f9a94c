package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("products", "collection-products")
	require.NoError(t, err)
	assert.True(t, isNew)

	item, exists := r.Get("products")
	assert.True(t, exists)
	assert.Equal(t, "collection-products", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("orders", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký trùng tên ghi đè giá trị cũ và báo isNew = false
	isNew, err = r.Register("orders", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	item, _ := r.Get("orders")
	assert.Equal(t, 2, item)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	item, err := r.GetOrCreate("reviews", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", item)

	// Lần hai trả về giá trị đã có, creator không chạy lại
	item, err = r.GetOrCreate("reviews", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", item)
	assert.Equal(t, 1, calls)
}
