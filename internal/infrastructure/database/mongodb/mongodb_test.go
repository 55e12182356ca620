package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDBName(t *testing.T) {
	assert.Equal(t, "explicit", ResolveDBName("mongodb://database:27017/mydatabase", "explicit"))
	assert.Equal(t, "mydatabase", ResolveDBName("mongodb://database:27017/mydatabase", ""))
	assert.Equal(t, "ecommerce", ResolveDBName("mongodb://database:27017", ""))
}
