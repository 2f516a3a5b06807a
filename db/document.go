package db

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// encodeDocument prepares a model for a write. The models encode a nil slice
// as null, which no validator accepts for an array, so nulls are dropped and
// the field is simply absent. In a $set document a top-level null becomes an
// empty array instead: an update replaces every array wholesale.
func encodeDocument(doc any, forSet bool) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}
	return pruneNulls(d, forSet), nil
}

func pruneNulls(d bson.D, emptyArrays bool) bson.D {
	out := make(bson.D, 0, len(d))
	for _, e := range d {
		switch v := e.Value.(type) {
		case nil:
			if !emptyArrays {
				continue
			}
			e.Value = bson.A{}
		case bson.D:
			e.Value = pruneNulls(v, false)
		case bson.A:
			for i, item := range v {
				if nested, ok := item.(bson.D); ok {
					v[i] = pruneNulls(nested, false)
				}
			}
		}
		out = append(out, e)
	}
	return out
}
