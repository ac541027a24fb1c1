package repository

import (
	"os"

	"github.com/buger/jsonparser"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/database/mongoclient"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

const (
	fieldAddresses   = "addresses"
	fieldText        = "text"
	fieldContentHash = "contenthash"
)

type jsonSource struct {
	path string
}

// NewJSONSource reads the gateway's record file, a single object keyed by fully qualified name
func NewJSONSource(path string) bns.RecordSource {
	return &jsonSource{path}
}

func (s *jsonSource) Load(ctx ctx.Ctx) (*bns.NameRecordMap, error) {
	return LoadJSONFile(ctx, s.path)
}

// LoadJSONFile reads and parses the record file at path
func LoadJSONFile(ctx ctx.Ctx, path string) (*bns.NameRecordMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"path": path,
		}).Error("failed to os.ReadFile")
		return nil, xerrors.Errorf("read %s: %w", path, err)
	}

	records, err := ParseJSON(ctx, data)
	if err != nil {
		return nil, xerrors.Errorf("parse %s: %w", path, err)
	}

	ctx.WithFields(log.Fields{
		"path":    path,
		"records": records.Len(),
	}).Info("name records loaded")
	return records, nil
}

// ParseJSON keeps the document order of the names. Entries which aren't objects and
// slots which aren't strings are skipped.
func ParseJSON(ctx ctx.Ctx, data []byte) (*bns.NameRecordMap, error) {
	records := []bns.NameRecord{}
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}

		if dataType != jsonparser.Object {
			ctx.WithFields(log.Fields{
				"name": name,
				"type": dataType.String(),
			}).Warn("skip non object record")
			return nil
		}

		record, err := parseRecord(ctx, name, value)
		if err != nil {
			return err
		}

		records = append(records, bns.NameRecord{Name: name, Record: record})
		return nil
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to jsonparser.ObjectEach")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidJsonFormat)
	}

	return bns.NewNameRecordMap(records), nil
}

func parseRecord(ctx ctx.Ctx, name string, data []byte) (bns.Record, error) {
	record := bns.Record{}
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		switch string(key) {
		case fieldAddresses:
			m, err := parseStringMap(ctx, name, value, dataType)
			record.Addresses = m
			return err
		case fieldText:
			m, err := parseStringMap(ctx, name, value, dataType)
			record.Text = m
			return err
		case fieldContentHash:
			if dataType != jsonparser.String {
				return nil
			}
			s, err := jsonparser.ParseString(value)
			record.ContentHash = s
			return err
		}
		return nil
	})
	return record, err
}

func parseStringMap(ctx ctx.Ctx, name string, data []byte, dataType jsonparser.ValueType) (map[string]string, error) {
	if dataType != jsonparser.Object {
		return nil, nil
	}

	res := map[string]string{}
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}

		if dataType != jsonparser.String {
			ctx.WithFields(log.Fields{
				"name": name,
				"slot": k,
				"type": dataType.String(),
			}).Warn("skip non string slot")
			return nil
		}

		v, err := jsonparser.ParseString(value)
		if err != nil {
			return err
		}
		res[k] = v
		return nil
	})
	return res, err
}

type mongoSource struct {
	client     *mongoclient.Client
	collection string
}

// NewMongoSource reads name records out of a collection in insertion order
func NewMongoSource(client *mongoclient.Client, collection string) bns.RecordSource {
	return &mongoSource{client, collection}
}

func (s *mongoSource) Load(ctx ctx.Ctx) (*bns.NameRecordMap, error) {
	return LoadMongo(ctx, s.client, s.collection)
}

// LoadMongo reads every document of the collection sorted by _id
func LoadMongo(ctx ctx.Ctx, client *mongoclient.Client, collection string) (*bns.NameRecordMap, error) {
	coll := client.Database(client.DbName).Collection(collection)
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("failed to Find")
		return nil, xerrors.Errorf("find %s: %w", collection, err)
	}

	records := []bns.NameRecord{}
	if err := cur.All(ctx, &records); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("failed to cur.All")
		return nil, xerrors.Errorf("decode %s: %w", collection, err)
	}

	ctx.WithFields(log.Fields{
		"collection": collection,
		"records":    len(records),
	}).Info("name records loaded")
	return bns.NewNameRecordMap(records), nil
}
