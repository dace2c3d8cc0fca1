/*
Package mongo reads tables of training data from MongoDB collections and
writes them onto them, one document per row.
*/
package mongo

import (
	"context"
	"fmt"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pkg/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// MaxDocumentInsertionsPerBulk is the maximum number of documents
// WriteTable inserts with a single bulk operation.
const MaxDocumentInsertionsPerBulk = 1000

/*
ReadTable takes a context, a MongoDB session, a collection name and a slice
of column names and returns a bio.Table with a row for every document in the
collection of the default database of the session. Documents have no column
order, so the columns must be given. Values are read as their default string
formatting and a document missing a column makes the read fail.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string, columns []string) (*bio.Table, error) {
	if len(columns) == 0 {
		return nil, errors.Errorf("reading collection %s: no columns given", collection)
	}
	s := session.Copy()
	defer s.Close()
	projection := bson.M{"_id": 0}
	for _, c := range columns {
		projection[c] = 1
	}
	iter := s.DB("").C(collection).Find(nil).Select(projection).Iter()
	result := &bio.Table{Columns: columns}
	var doc bson.M
	for n := 1; iter.Next(&doc); n++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		row, err := rowFromDocument(doc, columns)
		if err != nil {
			iter.Close()
			return nil, errors.Wrapf(err, "reading document %d of collection %s", n, collection)
		}
		result.Rows = append(result.Rows, row)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "iterating collection %s", collection)
	}
	return result, nil
}

/*
WriteTable takes a context, a MongoDB session, a collection name and a
bio.Table and inserts a document for every row of the table onto the
collection, with a string field per column.
*/
func WriteTable(ctx context.Context, session *mgo.Session, collection string, t *bio.Table) error {
	s := session.Copy()
	defer s.Close()
	c := s.DB("").C(collection)
	for start := 0; start < len(t.Rows); start += MaxDocumentInsertionsPerBulk {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + MaxDocumentInsertionsPerBulk
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		bulk := c.Bulk()
		for n, row := range t.Rows[start:end] {
			doc, err := documentFromRow(row, t.Columns)
			if err != nil {
				return errors.Wrapf(err, "row %d", start+n+1)
			}
			bulk.Insert(doc)
		}
		if _, err := bulk.Run(); err != nil {
			return errors.Wrapf(err, "inserting documents into collection %s", collection)
		}
	}
	return nil
}

func rowFromDocument(doc bson.M, columns []string) ([]string, error) {
	row := make([]string, 0, len(columns))
	for _, c := range columns {
		v, ok := doc[c]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for %s", c)
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprintf("%v", v)
		}
		row = append(row, s)
	}
	return row, nil
}

func documentFromRow(row, columns []string) (bson.M, error) {
	if len(row) != len(columns) {
		return nil, fmt.Errorf("%d values for %d columns", len(row), len(columns))
	}
	doc := make(bson.M, len(columns))
	for i, c := range columns {
		doc[c] = row[i]
	}
	return doc, nil
}
