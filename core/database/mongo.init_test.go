package database

import (
	"reflect"
	"testing"

	models "gameshop_commerce/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func findSpec(t *testing.T, specs []indexSpec, name string) indexSpec {
	t.Helper()
	for _, spec := range specs {
		if spec.name == name {
			return spec
		}
	}
	t.Fatalf("không tìm thấy index %s", name)
	return indexSpec{}
}

func TestCollectIndexSpecs_ReviewDedup(t *testing.T) {
	specs := collectIndexSpecs(reflect.TypeOf(models.Review{}))
	spec := findSpec(t, specs, "reviewer_comment_source_unique")

	require.Len(t, spec.keys, 3)
	assert.Equal(t, "reviewer_name", spec.keys[0].Key)
	assert.Equal(t, "comment", spec.keys[1].Key)
	assert.Equal(t, "source", spec.keys[2].Key)

	require.NotNil(t, spec.opts.Unique)
	assert.True(t, *spec.opts.Unique)

	// Ràng buộc unique chỉ áp cho review đồng bộ từ trustpilot,
	// admin vẫn tạo được các review trùng tên và nội dung
	assert.Equal(t, bson.M{"source": "trustpilot"}, spec.opts.PartialFilterExpression)
}

func TestCollectIndexSpecs_SingleAndUnique(t *testing.T) {
	type doc struct {
		Slug      string `bson:"slug" index:"single"`
		Key       string `bson:"key" index:"unique"`
		CreatedAt string `bson:"created_at" index:"single;order:-1"`
		Ignored   string `bson:"-" index:"single"`
		NoTag     string `bson:"no_tag"`
	}

	specs := collectIndexSpecs(reflect.TypeOf(doc{}))
	require.Len(t, specs, 3)

	slug := findSpec(t, specs, "slug_single")
	assert.Equal(t, bson.D{{Key: "slug", Value: 1}}, slug.keys)

	key := findSpec(t, specs, "key_unique")
	require.NotNil(t, key.opts.Unique)
	assert.True(t, *key.opts.Unique)
	assert.Nil(t, key.opts.PartialFilterExpression)

	created := findSpec(t, specs, "created_at_single")
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, created.keys)
}
