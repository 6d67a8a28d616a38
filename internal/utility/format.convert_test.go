package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"))
	assert.Equal(t, int64(-7), P2Int64("-7"))
	assert.Equal(t, int64(0), P2Int64(""))
	assert.Equal(t, int64(0), P2Int64("abc"))
	assert.Equal(t, int64(0), P2Int64("3.14"))
}

func TestString2ObjectID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(ObjectID2String(id)))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("khong-hop-le"))
}
